package request

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListParams_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/orders", nil)

	p := ParseListParams(r)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Empty(t, p.Search)
	assert.Equal(t, "ALL", p.Status)
}

func TestParseListParams_Full(t *testing.T) {
	r := httptest.NewRequest("GET", "/orders?status=PENDING&search=abc&page=2&per_page=10", nil)

	p := ParseListParams(r)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, "abc", p.Search)
	assert.Equal(t, "PENDING", p.Status)
}
