package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/saasadmin/internal/core"
)

func TestDashboardStats(t *testing.T) {
	svcs := newTestServices()
	h := NewDashboard(svcs.Dashboard)
	rec := httptest.NewRecorder()
	r := newRequest(http.MethodGet, "/dashboard/stats", nil)

	h.Stats(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats core.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 5, stats.TotalOrders)
	assert.Equal(t, 0, stats.TodayOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, int64(64000), stats.TotalRevenue)
}
