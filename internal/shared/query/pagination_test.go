package query

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantPage int
		wantSize int
	}{
		{"defaults", "/api/v1/books", 1, 10},
		{"explicit", "/api/v1/books?page=3&page_size=25", 3, 25},
		{"clamped to max", "/api/v1/books?page_size=500", 1, 100},
		{"garbage falls back", "/api/v1/books?page=abc&page_size=xyz", 1, 10},
		{"zero page", "/api/v1/books?page=0", 1, 10},
		{"negative size", "/api/v1/books?page_size=-5", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePagination(testContext(t, tt.target), 10, 100)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.PageSize)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	p := Pagination{Page: 3, PageSize: 20}
	assert.Equal(t, 20, p.Limit())
	assert.Equal(t, 40, p.Offset())
}

func TestPageLinks(t *testing.T) {
	t.Run("middle page keeps other params", func(t *testing.T) {
		c := testContext(t, "/api/v1/books?page=2&title=go")

		next, previous := PageLinks(c, Pagination{Page: 2, PageSize: 10}, 25)
		require.NotNil(t, next)
		require.NotNil(t, previous)
		assert.Contains(t, *next, "page=3")
		assert.Contains(t, *next, "title=go")
		assert.Contains(t, *previous, "page=1")
	})

	t.Run("first page has no previous", func(t *testing.T) {
		c := testContext(t, "/api/v1/books")

		next, previous := PageLinks(c, Pagination{Page: 1, PageSize: 10}, 25)
		require.NotNil(t, next)
		assert.Nil(t, previous)
	})

	t.Run("last page has no next", func(t *testing.T) {
		c := testContext(t, "/api/v1/books?page=3")

		next, previous := PageLinks(c, Pagination{Page: 3, PageSize: 10}, 25)
		assert.Nil(t, next)
		require.NotNil(t, previous)
	})

	t.Run("single page has neither", func(t *testing.T) {
		c := testContext(t, "/api/v1/books")

		next, previous := PageLinks(c, Pagination{Page: 1, PageSize: 10}, 5)
		assert.Nil(t, next)
		assert.Nil(t, previous)
	})
}

func TestTotalPages(t *testing.T) {
	p := Pagination{Page: 1, PageSize: 10}
	assert.Equal(t, int64(0), p.TotalPages(0))
	assert.Equal(t, int64(1), p.TotalPages(10))
	assert.Equal(t, int64(3), p.TotalPages(25))
}
