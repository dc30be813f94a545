package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edvin/saasadmin/internal/api/request"
	"github.com/edvin/saasadmin/internal/api/response"
	"github.com/edvin/saasadmin/internal/core"
)

type Plan struct {
	svc *core.PlanService
}

func NewPlan(svc *core.PlanService) *Plan {
	return &Plan{svc: svc}
}

// List godoc
//
//	@Summary	List subscription plans
//	@Tags		Plans
//	@Success	200	{array}	model.Plan
//	@Router		/plans [get]
func (h *Plan) List(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, h.svc.List())
}

// Get godoc
//
//	@Summary	Get a plan by id
//	@Tags		Plans
//	@Param		id	path		string	true	"Plan ID"
//	@Success	200	{object}	model.Plan
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/plans/{id} [get]
func (h *Plan) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.svc.Get(id)
	if err != nil {
		response.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, plan)
}
