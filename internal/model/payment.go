package model

// PaymentResult is the caller-visible outcome of a payment attempt. A decline
// is a result, not an error: Success is false and Message explains why.
type PaymentResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
	// GatewayReference is the simulated upstream payment reference.
	GatewayReference string `json:"gateway_reference,omitempty"`
}
