package core

import (
	"github.com/edvin/saasadmin/internal/gateway"
	"github.com/edvin/saasadmin/internal/store"
)

type Services struct {
	Plan         *PlanService
	Order        *OrderService
	Subscription *SubscriptionService
	Payment      *PaymentService
	Dashboard    *DashboardService
}

func NewServices(st store.Store, gw gateway.Gateway) *Services {
	plan := NewPlanService()
	order := NewOrderService(st)
	sub := NewSubscriptionService(st)

	return &Services{
		Plan:         plan,
		Order:        order,
		Subscription: sub,
		Payment:      NewPaymentService(order, sub, plan, gw),
		Dashboard:    NewDashboardService(order),
	}
}
