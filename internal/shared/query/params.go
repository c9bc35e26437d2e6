package query

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/shared/types"
)

// Int returns the named query parameter as an int, or nil when it
// is absent or not a number. Malformed filter input is ignored,
// not an error.
func Int(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// Date returns the named query parameter as a calendar date, or
// nil when absent or malformed.
func Date(c *gin.Context, name string) *types.Date {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	d, err := types.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &d
}
