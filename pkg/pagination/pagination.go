// Package pagination turns page/limit query values into a row window.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	MinLimit     = 1
)

// Params is a clamped page window. Offset is the number of rows to skip and
// is what repositories apply; Page and Limit are echoed back to clients.
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// New clamps page and limit and derives the offset. A page below one or a
// limit below MinLimit falls back to the default; a limit above MaxLimit is
// capped.
func New(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	switch {
	case limit < MinLimit:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Parse reads page and limit from the query string. Missing or malformed
// values are treated as unset.
func Parse(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return New(page, limit)
}
