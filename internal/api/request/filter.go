package request

import "net/http"

// ListParams holds pagination, search, and status filter parameters.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
	Status  string
}

// ParseListParams extracts list parameters from the query string. Status
// defaults to "ALL" when not provided.
func ParseListParams(r *http.Request) ListParams {
	pg := ParsePagination(r)
	return ListParams{
		Page:    pg.Page,
		PerPage: pg.PerPage,
		Search:  r.URL.Query().Get("search"),
		Status:  stringOr(r.URL.Query().Get("status"), "ALL"),
	}
}

func stringOr(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}
