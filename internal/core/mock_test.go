package core

import (
	"context"

	"github.com/edvin/saasadmin/internal/gateway"
)

// stubGateway implements gateway.Gateway with a forced outcome.
type stubGateway struct {
	approve   bool
	createErr error
	chargeErr error
	charged   []string
}

func (g *stubGateway) CreateOrder(_ context.Context, orderID string, _ int64) error {
	return g.createErr
}

func (g *stubGateway) Charge(_ context.Context, orderID, _ string) (gateway.ChargeResult, error) {
	if g.chargeErr != nil {
		return gateway.ChargeResult{}, g.chargeErr
	}
	g.charged = append(g.charged, orderID)
	res := gateway.ChargeResult{Reference: "ref-test-1"}
	if g.approve {
		res.Approved = true
		res.TransactionID = "TXN-1692072312000"
	}
	return res, nil
}
