package model

// Subscription is the single active plan assignment for the tenant. Exactly
// one record exists per store; every successful plan purchase overwrites it
// wholesale. No history is retained.
type Subscription struct {
	PlanID     string `json:"plan_id"`
	ValidUntil string `json:"valid_until"`
	Status     string `json:"status"`
}
