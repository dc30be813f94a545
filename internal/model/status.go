package model

// Order status constants. CANCELLED and REFUNDED are modeled states reserved
// for future operations; no current code path produces them.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusRefunded  = "REFUNDED"
)

// Payment method constants.
const (
	PaymentMethodAlipay  = "ALIPAY"
	PaymentMethodWechat  = "WECHAT"
	PaymentMethodUnknown = "UNKNOWN"
)

// Subscription status constants. Status is stored, not derived from
// ValidUntil; there is no automatic expiry sweep.
const (
	SubscriptionActive  = "ACTIVE"
	SubscriptionExpired = "EXPIRED"
)
