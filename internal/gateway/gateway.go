// Package gateway models the external payment processor. The only
// implementation is a simulator: there is no real PSP integration, the
// round-trip latency and the approve/decline outcome are both synthetic.
package gateway

import "context"

// ChargeResult is the gateway's answer to a charge attempt.
type ChargeResult struct {
	Approved bool
	// TransactionID is set on approved charges.
	TransactionID string
	// Reference is the upstream payment reference assigned to the attempt,
	// approved or not.
	Reference string
}

// Gateway is the payment processor collaborator.
type Gateway interface {
	// CreateOrder registers a new order with the processor. For the
	// simulator this only burns the configured round-trip latency.
	CreateOrder(ctx context.Context, orderID string, amount int64) error
	// Charge runs one payment attempt for an order.
	Charge(ctx context.Context, orderID, method string) (ChargeResult, error)
}
