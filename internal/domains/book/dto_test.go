package book

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktracker-backend/internal/shared/query"
)

func intPtr(n int) *int { return &n }

func validRequest() BookRequest {
	return BookRequest{
		Title:       "The Dispossessed",
		ISBN:        "978-0-123-45678-9",
		Synopsis:    "An ambiguous utopia.",
		Pages:       intPtr(387),
		PublisherID: uuid.New(),
		AuthorIDs:   []uuid.UUID{uuid.New()},
	}
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, field)
}

func TestBookRequestValid(t *testing.T) {
	assert.NoError(t, validRequest().Validate())
}

func TestBookRequestTitleRequired(t *testing.T) {
	req := validRequest()
	req.Title = ""
	requireFieldError(t, req.Validate(), "title")
}

func TestBookRequestISBN(t *testing.T) {
	req := validRequest()
	req.ISBN = "12345"
	requireFieldError(t, req.Validate(), "isbn")

	req.ISBN = "0123456789"
	assert.NoError(t, req.Validate())
}

func TestBookRequestPagesRange(t *testing.T) {
	req := validRequest()
	req.Pages = intPtr(0)
	requireFieldError(t, req.Validate(), "pages")

	req.Pages = intPtr(10001)
	requireFieldError(t, req.Validate(), "pages")

	req.Pages = nil
	assert.NoError(t, req.Validate())
}

func TestBookRequestPublisherRequired(t *testing.T) {
	req := validRequest()
	req.PublisherID = uuid.Nil
	requireFieldError(t, req.Validate(), "publisher")
}

func TestBookRequestCoverURLOptional(t *testing.T) {
	req := validRequest()
	req.CoverImageURL = ""
	assert.NoError(t, req.Validate())

	req.CoverImageURL = "https://example.com/cover.jpg"
	assert.NoError(t, req.Validate())

	req.CoverImageURL = "nope"
	requireFieldError(t, req.Validate(), "cover_image_url")
}

func TestFilterBuildWhereEmpty(t *testing.T) {
	f := &Filter{}
	cond := f.BuildWhere()

	assert.Equal(t, "TRUE", cond.Where())
	assert.Empty(t, cond.Args())
}

func TestFilterBuildWhereCombinesWithAnd(t *testing.T) {
	f := &Filter{
		Title:    "dispossessed",
		MinPages: intPtr(100),
		MaxPages: intPtr(500),
	}
	cond := f.BuildWhere()

	where := cond.Where()
	assert.Contains(t, where, "b.title ILIKE $1")
	assert.Contains(t, where, "b.pages >= $2")
	assert.Contains(t, where, "b.pages <= $3")
	assert.Len(t, cond.Args(), 3)
}

func TestFilterSearchSpansRelations(t *testing.T) {
	f := &Filter{Search: "le guin"}
	cond := f.BuildWhere()

	where := cond.Where()
	assert.Contains(t, where, "b.title ILIKE")
	assert.Contains(t, where, "b.synopsis ILIKE")
	assert.Contains(t, where, "p.name ILIKE")
	assert.Contains(t, where, "sa.name ILIKE")
	assert.Len(t, cond.Args(), 4)
}

func TestBookSortAllowList(t *testing.T) {
	assert.Equal(t, "b.title ASC, b.id", BookSort.OrderBy(""))
	assert.Equal(t, "b.publication_date DESC, b.id", BookSort.OrderBy("-publication_date"))
	assert.Equal(t, "b.title ASC, b.id", BookSort.OrderBy("isbn"))
}

func TestFilterPaginationIndependent(t *testing.T) {
	f := &Filter{Title: "x", Pagination: query.Pagination{Page: 2, PageSize: 10}}
	cond := f.BuildWhere()

	// LIMIT/OFFSET placeholders start after the filter args
	assert.Equal(t, 2, cond.NextIndex())
}
