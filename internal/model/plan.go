package model

// Plan tier identifiers.
const (
	PlanFree       = "FREE"
	PlanBasic      = "BASIC"
	PlanPro        = "PRO"
	PlanEnterprise = "ENTERPRISE"
)

// PlanFeature is a single named feature with an inclusion flag.
type PlanFeature struct {
	Name     string `json:"name"`
	Included bool   `json:"included"`
}

// Plan is a priced subscription tier. Catalog data, loaded once at process
// start; never persisted.
type Plan struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Price       int64         `json:"price"`
	Period      string        `json:"period"`
	Features    []PlanFeature `json:"features"`
	Recommended bool          `json:"recommended,omitempty"`
}
