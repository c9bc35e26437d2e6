package book

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/types"
	"booktracker-backend/internal/shared/validate"
)

// BookRequest is the write shape: relationship fields carried as
// identifiers. An empty author list is accepted on create (the
// links are written right after the row, in the same transaction)
// but rejected on update, where it would strip an existing book of
// its authors.
type BookRequest struct {
	Title           string      `json:"title"`
	ISBN            string      `json:"isbn"`
	Synopsis        string      `json:"synopsis"`
	PublicationDate *types.Date `json:"publication_date"`
	Pages           *int        `json:"pages"`
	CoverImageURL   string      `json:"cover_image_url"`
	PublisherID     uuid.UUID   `json:"publisher"`
	AuthorIDs       []uuid.UUID `json:"authors"`
	GenreIDs        []uuid.UUID `json:"genres"`
}

func (r BookRequest) Validate() error {
	fieldErrors := validate.FieldErrors(validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validate.ISBN,
		),
		validation.Field(&r.Pages,
			validation.Min(1).Error("pages must be at least 1"),
			validation.Max(10000).Error("pages must be at most 10000"),
		),
		validation.Field(&r.PublicationDate, validation.By(validate.NotFutureDate)),
		validation.Field(&r.CoverImageURL,
			validation.When(r.CoverImageURL != "", validate.AbsoluteURL),
		),
	))

	// ozzo's Required does not treat a zero UUID array as empty
	if r.PublisherID == uuid.Nil {
		fieldErrors["publisher"] = errors.New("publisher is required")
	}

	return validate.OrNil(fieldErrors)
}

// Filter holds the recognized list parameters. Unrecognized query
// parameters are simply never parsed into it.
type Filter struct {
	Title           string
	Genres          string
	Authors         string
	Publisher       string
	ISBN            string
	PublicationYear *int
	MinPages        *int
	MaxPages        *int
	Search          string

	OrderBy    string
	Pagination query.Pagination
}

// BookSort is the ordering allow-list for /books
var BookSort = query.Sort{
	Allowed: map[string]string{
		"title":            "b.title",
		"publication_date": "b.publication_date",
		"pages":            "b.pages",
	},
	Default:    "title",
	TieBreaker: "b.id",
}

// BuildWhere composes the filter into AND-combined conditions.
// Relationship filters go through EXISTS subqueries so they do not
// disturb the aggregated author/genre arrays in the select list.
func (f *Filter) BuildWhere() *query.Conditions {
	cond := &query.Conditions{}

	if f.Title != "" {
		cond.ILike("b.title", f.Title)
	}
	if f.ISBN != "" {
		cond.ILike("b.isbn", f.ISBN)
	}
	if f.Publisher != "" {
		cond.ILike("p.name", f.Publisher)
	}
	if f.Authors != "" {
		cond.Add(`EXISTS (
			SELECT 1 FROM book_authors fba
			JOIN authors fa ON fa.id = fba.author_id
			WHERE fba.book_id = b.id AND fa.name ILIKE $%d
		)`, "%"+f.Authors+"%")
	}
	if f.Genres != "" {
		cond.Add(`EXISTS (
			SELECT 1 FROM book_genres fbg
			JOIN genres fg ON fg.id = fbg.genre_id
			WHERE fbg.book_id = b.id AND fg.name ILIKE $%d
		)`, "%"+f.Genres+"%")
	}
	if f.PublicationYear != nil {
		cond.Add("EXTRACT(YEAR FROM b.publication_date) = $%d", *f.PublicationYear)
	}
	if f.MinPages != nil {
		cond.Add("b.pages >= $%d", *f.MinPages)
	}
	if f.MaxPages != nil {
		cond.Add("b.pages <= $%d", *f.MaxPages)
	}
	if f.Search != "" {
		term := "%" + f.Search + "%"
		cond.Add(`(b.title ILIKE $%d OR b.synopsis ILIKE $%d OR p.name ILIKE $%d OR EXISTS (
			SELECT 1 FROM book_authors sba
			JOIN authors sa ON sa.id = sba.author_id
			WHERE sba.book_id = b.id AND sa.name ILIKE $%d
		))`, term, term, term, term)
	}

	return cond
}
