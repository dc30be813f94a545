package model

import "strings"

type Order struct {
	ID          string `json:"id" db:"id"`
	TenantName  string `json:"tenant_name" db:"tenant_name"`
	ProductName string `json:"product_name" db:"product_name"`
	// PlanID is set on subscription purchase orders and identifies the plan
	// being bought or renewed. Empty for other products.
	PlanID        string `json:"plan_id,omitempty" db:"plan_id"`
	Amount        int64  `json:"amount" db:"amount"`
	CreatedAt     string `json:"created_at" db:"created_at"`
	PaidAt        string `json:"paid_at,omitempty" db:"paid_at"`
	Status        string `json:"status" db:"status"`
	PaymentMethod string `json:"payment_method,omitempty" db:"payment_method"`
}

// Matches reports whether the order matches a case-insensitive substring
// search over id, tenant name, and product name.
func (o *Order) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(o.ID), q) ||
		strings.Contains(strings.ToLower(o.TenantName), q) ||
		strings.Contains(strings.ToLower(o.ProductName), q)
}
