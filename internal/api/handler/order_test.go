package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/saasadmin/internal/core"
	"github.com/edvin/saasadmin/internal/model"
)

func decodeOrderPage(t *testing.T, rec *httptest.ResponseRecorder) core.OrderPage {
	t.Helper()
	var page core.OrderPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	return page
}

func TestOrderList_Defaults(t *testing.T) {
	svcs := newTestServices()
	h := NewOrder(svcs.Order)
	rec := httptest.NewRecorder()
	r := newRequest(http.MethodGet, "/orders", nil)

	h.List(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	page := decodeOrderPage(t, rec)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 5, page.PerPage)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "ORD-20230815-001", page.Items[0].ID)
}

func TestOrderList_StatusFilter(t *testing.T) {
	svcs := newTestServices()
	h := NewOrder(svcs.Order)
	rec := httptest.NewRecorder()
	r := newRequest(http.MethodGet, "/orders?status=PENDING", nil)

	h.List(rec, r)

	page := decodeOrderPage(t, rec)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ORD-20230814-002", page.Items[0].ID)
}

func TestOrderList_Search(t *testing.T) {
	svcs := newTestServices()
	h := NewOrder(svcs.Order)
	rec := httptest.NewRecorder()
	r := newRequest(http.MethodGet, "/orders?search=xyz", nil)

	h.List(rec, r)

	page := decodeOrderPage(t, rec)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "XYZ贸易有限公司", page.Items[0].TenantName)
}

func TestOrderList_Pagination(t *testing.T) {
	svcs := newTestServices()
	h := NewOrder(svcs.Order)
	rec := httptest.NewRecorder()
	r := newRequest(http.MethodGet, "/orders?page=2&per_page=2", nil)

	h.List(rec, r)

	page := decodeOrderPage(t, rec)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.PerPage)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "ORD-20230814-002", page.Items[0].ID)
}

func TestOrderGet(t *testing.T) {
	svcs := newTestServices()
	h := NewOrder(svcs.Order)
	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodGet, "/orders/ORD-20230815-001", nil), "id", "ORD-20230815-001")

	h.Get(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)

	var order model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "ABC科技有限公司", order.TenantName)
	assert.Equal(t, model.OrderStatusPaid, order.Status)
}

func TestOrderGet_NotFound(t *testing.T) {
	svcs := newTestServices()
	h := NewOrder(svcs.Order)
	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodGet, "/orders/ORD-nope", nil), "id", "ORD-nope")

	h.Get(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeErrorResponse(rec)
	assert.Contains(t, body["error"], "order not found")
}

func TestOrderGet_MissingID(t *testing.T) {
	svcs := newTestServices()
	h := NewOrder(svcs.Order)
	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodGet, "/orders/", nil), "id", "")

	h.Get(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
