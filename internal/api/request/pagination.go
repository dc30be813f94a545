package request

import (
	"net/http"
	"strconv"
)

// Pagination holds parsed page-numbered pagination parameters.
type Pagination struct {
	Page    int
	PerPage int
}

const (
	DefaultPerPage = 5
	MaxPerPage     = 100
)

// ParsePagination extracts page and per_page from query parameters. Pages
// are 1-based; invalid values fall back to the defaults.
func ParsePagination(r *http.Request) Pagination {
	p := Pagination{
		Page:    1,
		PerPage: DefaultPerPage,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = page
		}
	}

	if perStr := r.URL.Query().Get("per_page"); perStr != "" {
		if per, err := strconv.Atoi(perStr); err == nil && per > 0 {
			p.PerPage = per
		}
	}

	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}

	return p
}
