package core

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/edvin/saasadmin/internal/gateway"
	"github.com/edvin/saasadmin/internal/model"
)

// Timestamp layouts used on stored records.
const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// subscriptionProductPrefix marks an order as a subscription purchase in its
// display name. The renewal decision itself uses the order's PlanID.
const subscriptionProductPrefix = "SaaS系统 - "

// renewalDays is the calendar-day validity extension per successful plan
// purchase (not calendar-month-aware).
const renewalDays = 30

// User-facing payment messages.
const (
	msgPaymentSuccess  = "支付成功"
	msgPaymentDeclined = "支付超时或被拒绝，请重试"
)

var paymentAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "payment_attempts_total",
		Help: "Simulated payment attempts by method and outcome",
	},
	[]string{"method", "outcome"},
)

// PaymentService drives the order lifecycle: it creates pending subscription
// orders and settles them through the gateway simulator.
type PaymentService struct {
	orders *OrderService
	subs   *SubscriptionService
	plans  *PlanService
	gw     gateway.Gateway
}

func NewPaymentService(orders *OrderService, subs *SubscriptionService, plans *PlanService, gw gateway.Gateway) *PaymentService {
	return &PaymentService{orders: orders, subs: subs, plans: plans, gw: gw}
}

// CreateSubscriptionOrder builds a PENDING order for a plan purchase and
// registers it with the gateway. The order id embeds the current date plus a
// random 3-digit suffix; uniqueness is best-effort, collisions are not
// checked.
func (s *PaymentService) CreateSubscriptionOrder(ctx context.Context, planID, tenantName string) (string, error) {
	plan, err := s.plans.Get(planID)
	if err != nil {
		return "", err
	}

	now := time.Now()
	orderID := fmt.Sprintf("ORD-%s-%03d", now.Format("20060102"), rand.IntN(1000))

	order := &model.Order{
		ID:          orderID,
		TenantName:  tenantName,
		ProductName: subscriptionProductPrefix + plan.Name,
		PlanID:      plan.ID,
		Amount:      plan.Price,
		CreatedAt:   now.Format(timestampLayout),
		Status:      model.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return "", fmt.Errorf("create subscription order: %w", err)
	}

	if err := s.gw.CreateOrder(ctx, orderID, order.Amount); err != nil {
		return "", fmt.Errorf("register order %s with gateway: %w", orderID, err)
	}
	return orderID, nil
}

// ProcessPayment runs one payment attempt against the gateway. On approval
// the order moves to PAID and, if it is a plan purchase, the subscription is
// overwritten with a fresh 30-day validity. On decline the order is left
// PENDING and retryable. An unknown order id is a failed result, not an
// error.
func (s *PaymentService) ProcessPayment(ctx context.Context, orderID, method string) (model.PaymentResult, error) {
	if method != model.PaymentMethodAlipay && method != model.PaymentMethodWechat {
		return model.PaymentResult{Success: false, Message: "unsupported payment method"}, nil
	}

	order, err := s.orders.Get(ctx, orderID)
	if errors.Is(err, ErrOrderNotFound) {
		return model.PaymentResult{Success: false, Message: "order not found"}, nil
	}
	if err != nil {
		return model.PaymentResult{}, err
	}

	res, err := s.gw.Charge(ctx, orderID, method)
	if err != nil {
		return model.PaymentResult{}, fmt.Errorf("charge order %s: %w", orderID, err)
	}

	if !res.Approved {
		paymentAttempts.WithLabelValues(method, "declined").Inc()
		return model.PaymentResult{
			Success:          false,
			Message:          msgPaymentDeclined,
			GatewayReference: res.Reference,
		}, nil
	}

	now := time.Now()
	if _, err := s.orders.MarkPaid(ctx, orderID, method, now.Format(timestampLayout)); err != nil {
		return model.PaymentResult{}, err
	}

	if order.PlanID != "" {
		plan, err := s.plans.Get(order.PlanID)
		if err != nil {
			return model.PaymentResult{}, fmt.Errorf("resolve plan for order %s: %w", orderID, err)
		}
		sub := model.Subscription{
			PlanID:     plan.ID,
			Status:     model.SubscriptionActive,
			ValidUntil: now.AddDate(0, 0, renewalDays).Format(dateLayout),
		}
		if err := s.subs.Set(ctx, sub); err != nil {
			return model.PaymentResult{}, err
		}
	}

	paymentAttempts.WithLabelValues(method, "approved").Inc()
	return model.PaymentResult{
		Success:          true,
		Message:          msgPaymentSuccess,
		TransactionID:    res.TransactionID,
		GatewayReference: res.Reference,
	}, nil
}
