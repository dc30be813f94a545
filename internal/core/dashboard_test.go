package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/saasadmin/internal/model"
	"github.com/edvin/saasadmin/internal/store"
)

func TestDashboardService_Stats_SeedData(t *testing.T) {
	svcs, _ := newPaymentFixture(&stubGateway{})

	stats, err := svcs.Dashboard.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalOrders)
	assert.Equal(t, 0, stats.TodayOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	// Sum of the four seeded PAID orders.
	assert.Equal(t, int64(25000+12000+12000+15000), stats.TotalRevenue)
}

func TestDashboardService_Stats_CountsToday(t *testing.T) {
	st := store.NewMemory()
	svc := NewOrderService(st)
	dash := NewDashboardService(svc)
	ctx := context.Background()

	require.NoError(t, st.Write(ctx, store.KeyOrders, "[]"))
	require.NoError(t, svc.Create(ctx, &model.Order{
		ID:        "ORD-20230901-001",
		CreatedAt: time.Now().Format("2006-01-02 15:04:05"),
		Status:    model.OrderStatusPending,
	}))
	require.NoError(t, svc.Create(ctx, &model.Order{
		ID:        "ORD-20230812-009",
		CreatedAt: "2023-08-12 09:00:00",
		Status:    model.OrderStatusPaid,
		Amount:    100,
	}))

	stats, err := dash.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.TodayOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, int64(100), stats.TotalRevenue)
}
