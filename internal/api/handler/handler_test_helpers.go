package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/edvin/saasadmin/internal/core"
	"github.com/edvin/saasadmin/internal/gateway"
	"github.com/edvin/saasadmin/internal/store"
)

// newRequest creates a new HTTP request with an optional JSON body.
func newRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, target, &buf)
	r.Header.Set("Content-Type", "application/json")
	return r
}

// newRequestRaw creates a new HTTP request with a raw string body.
func newRequestRaw(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// withChiURLParam adds a chi URL parameter to the request context.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeErrorResponse parses the JSON error response body into a map.
func decodeErrorResponse(rec *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

// newTestServices builds the full service graph on a fresh in-memory store
// with a zero-latency gateway that always approves.
func newTestServices() *core.Services {
	return newTestServicesWith(func() float64 { return 0.5 })
}

// newTestServicesWith builds the service graph with a forced gateway draw.
func newTestServicesWith(draw func() float64) *core.Services {
	gw := &gateway.Simulator{
		CreateLatency: 0,
		ChargeLatency: 0,
		SuccessRate:   gateway.DefaultSuccessRate,
		Rand:          draw,
	}
	return core.NewServices(store.NewMemory(), gw)
}
