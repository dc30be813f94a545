package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edvin/saasadmin/internal/api/request"
	"github.com/edvin/saasadmin/internal/api/response"
	"github.com/edvin/saasadmin/internal/core"
)

type Order struct {
	svc *core.OrderService
}

func NewOrder(svc *core.OrderService) *Order {
	return &Order{svc: svc}
}

// List godoc
//
//	@Summary	List purchase orders
//	@Tags		Orders
//	@Param		status		query		string	false	"Status filter (ALL, PENDING, PAID, CANCELLED, REFUNDED)"
//	@Param		search		query		string	false	"Substring match over id, tenant and product name"
//	@Param		page		query		int		false	"1-based page number"
//	@Param		per_page	query		int		false	"Page size (default 5, max 100)"
//	@Success	200			{object}	core.OrderPage
//	@Failure	500			{object}	response.ErrorResponse
//	@Router		/orders [get]
func (h *Order) List(w http.ResponseWriter, r *http.Request) {
	params := request.ParseListParams(r)

	page, err := h.svc.List(r.Context(), core.ListOrdersParams{
		Status:  params.Status,
		Search:  params.Search,
		Page:    params.Page,
		PerPage: params.PerPage,
	})
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, page)
}

// Get godoc
//
//	@Summary	Get an order by id
//	@Tags		Orders
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	model.Order
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/orders/{id} [get]
func (h *Order) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.svc.Get(r.Context(), id)
	if errors.Is(err, core.ErrOrderNotFound) {
		response.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, order)
}
