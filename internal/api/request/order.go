package request

// CreateOrder is the body for creating a subscription purchase order.
type CreateOrder struct {
	PlanID     string `json:"plan_id" validate:"required,oneof=FREE BASIC PRO ENTERPRISE"`
	TenantName string `json:"tenant_name" validate:"required,min=1,max=128"`
}

// PayOrder is the body for settling an order.
type PayOrder struct {
	Method string `json:"method" validate:"required,oneof=ALIPAY WECHAT"`
}
