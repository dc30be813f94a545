package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edvin/saasadmin/internal/api/request"
	"github.com/edvin/saasadmin/internal/api/response"
	"github.com/edvin/saasadmin/internal/core"
)

type Payment struct {
	svc *core.PaymentService
}

func NewPayment(svc *core.PaymentService) *Payment {
	return &Payment{svc: svc}
}

// CreateOrder godoc
//
//	@Summary	Create a pending subscription purchase order
//	@Tags		Payments
//	@Param		body	body		request.CreateOrder	true	"Order details"
//	@Success	201		{object}	map[string]string
//	@Failure	400		{object}	response.ErrorResponse
//	@Router		/orders [post]
func (h *Payment) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrder
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	orderID, err := h.svc.CreateSubscriptionOrder(r.Context(), req.PlanID, req.TenantName)
	if errors.Is(err, core.ErrPlanNotFound) {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusCreated, map[string]string{"order_id": orderID})
}

// Pay godoc
//
//	@Summary	Run a payment attempt for an order
//	@Tags		Payments
//	@Param		id		path		string				true	"Order ID"
//	@Param		body	body		request.PayOrder	true	"Payment method"
//	@Success	200		{object}	model.PaymentResult
//	@Failure	400		{object}	response.ErrorResponse
//	@Router		/orders/{id}/pay [post]
func (h *Payment) Pay(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.PayOrder
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.ProcessPayment(r.Context(), id, req.Method)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}
