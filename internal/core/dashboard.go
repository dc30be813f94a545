package core

import (
	"context"
	"strings"
	"time"

	"github.com/edvin/saasadmin/internal/model"
)

// DashboardStats holds aggregate counts over the order collection.
type DashboardStats struct {
	TotalOrders   int   `json:"total_orders"`
	TodayOrders   int   `json:"today_orders"`
	PendingOrders int   `json:"pending_orders"`
	TotalRevenue  int64 `json:"total_revenue"`
}

// DashboardService computes aggregate stats for the order dashboard.
type DashboardService struct {
	orders *OrderService
}

func NewDashboardService(orders *OrderService) *DashboardService {
	return &DashboardService{orders: orders}
}

// Stats aggregates the full order collection. Revenue counts PAID orders
// only; today's count matches on the createdAt date prefix.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(dateLayout)
	stats := &DashboardStats{TotalOrders: len(orders)}
	for _, o := range orders {
		if strings.HasPrefix(o.CreatedAt, today) {
			stats.TodayOrders++
		}
		if o.Status == model.OrderStatusPending {
			stats.PendingOrders++
		}
		if o.Status == model.OrderStatusPaid {
			stats.TotalRevenue += o.Amount
		}
	}
	return stats, nil
}
