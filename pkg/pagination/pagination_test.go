package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        Params
	}{
		{name: "first page", page: 1, limit: 10, want: Params{Page: 1, Limit: 10, Offset: 0}},
		{name: "third page", page: 3, limit: 10, want: Params{Page: 3, Limit: 10, Offset: 20}},
		{name: "unset", want: Params{Page: 1, Limit: 20, Offset: 0}},
		{name: "negative", page: -2, limit: -5, want: Params{Page: 1, Limit: 20, Offset: 0}},
		{name: "limit capped", page: 2, limit: 500, want: Params{Page: 2, Limit: 100, Offset: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.page, tt.limit))
		})
	}
}

func TestParse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query string
		want  Params
	}{
		{query: "", want: Params{Page: 1, Limit: 20, Offset: 0}},
		{query: "page=3&limit=10", want: Params{Page: 3, Limit: 10, Offset: 20}},
		{query: "page=0&limit=0", want: Params{Page: 1, Limit: 20, Offset: 0}},
		{query: "page=x&limit=500", want: Params{Page: 1, Limit: 100, Offset: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/api/invoices?"+tt.query, nil)
			assert.Equal(t, tt.want, Parse(c))
		})
	}
}
