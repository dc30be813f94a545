package handler

import (
	"net/http"

	"github.com/edvin/saasadmin/internal/api/response"
	"github.com/edvin/saasadmin/internal/core"
)

type Subscription struct {
	svc *core.SubscriptionService
}

func NewSubscription(svc *core.SubscriptionService) *Subscription {
	return &Subscription{svc: svc}
}

// Get godoc
//
//	@Summary	Get the current tenant subscription
//	@Tags		Subscription
//	@Success	200	{object}	model.Subscription
//	@Failure	500	{object}	response.ErrorResponse
//	@Router		/subscription [get]
func (h *Subscription) Get(w http.ResponseWriter, r *http.Request) {
	sub, err := h.svc.Get(r.Context())
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, sub)
}
