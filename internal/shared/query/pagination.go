package query

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination holds the page-number pagination parameters
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page/page_size query parameters,
// clamping page_size to maxSize. Malformed values fall back
// to defaults rather than erroring.
func ParsePagination(c *gin.Context, defaultSize, maxSize int) Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize)))
	if err != nil || size < 1 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}

	return Pagination{Page: page, PageSize: size}
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageLinks builds absolute next/previous URLs for the current
// request, preserving all other query parameters.
func PageLinks(c *gin.Context, p Pagination, count int64) (next, previous *string) {
	hasNext := int64(p.Page)*int64(p.PageSize) < count
	hasPrev := p.Page > 1

	if hasNext {
		u := pageURL(c, p.Page+1)
		next = &u
	}
	if hasPrev {
		u := pageURL(c, p.Page-1)
		previous = &u
	}
	return next, previous
}

func pageURL(c *gin.Context, page int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}

	u := url.URL{
		Scheme: scheme,
		Host:   c.Request.Host,
		Path:   c.Request.URL.Path,
	}

	q := c.Request.URL.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	return u.String()
}

// TotalPages returns the number of pages for a count
func (p Pagination) TotalPages(count int64) int64 {
	if count == 0 {
		return 0
	}
	return (count + int64(p.PageSize) - 1) / int64(p.PageSize)
}
