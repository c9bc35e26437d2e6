package bookshelf

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/types"
	"booktracker-backend/internal/shared/validate"
)

// BookshelfRequest is the write shape for the shelf itself
type BookshelfRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r BookshelfRequest) Validate() error {
	return validate.OrNil(validate.FieldErrors(validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
	)))
}

// AddBookRequest is the body of the add-book sub-action
type AddBookRequest struct {
	BookID uuid.UUID `json:"book_id"`
}

func (r AddBookRequest) Validate() error {
	if r.BookID == uuid.Nil {
		return validation.Errors{"book_id": errors.New("book_id is required")}
	}
	return nil
}

// Filter holds the recognized list parameters. UserID always
// carries the requester; shelves are never listed cross-user.
type Filter struct {
	Name          string
	Description   string
	CreatedAfter  *types.Date
	CreatedBefore *types.Date

	UserID uuid.UUID

	OrderBy    string
	Pagination query.Pagination
}

// BookshelfSort is the ordering allow-list for /bookshelves
var BookshelfSort = query.Sort{
	Allowed: map[string]string{
		"name":       "s.name",
		"created_at": "s.created_at",
		"updated_at": "s.updated_at",
	},
	Default:    "-created_at",
	TieBreaker: "s.id",
}

func (f *Filter) BuildWhere() *query.Conditions {
	cond := &query.Conditions{}

	cond.Add("s.user_id = $%d", f.UserID)
	if f.Name != "" {
		cond.ILike("s.name", f.Name)
	}
	if f.Description != "" {
		cond.ILike("s.description", f.Description)
	}
	if f.CreatedAfter != nil {
		cond.Add("s.created_at >= $%d", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		cond.Add("s.created_at <= $%d", *f.CreatedBefore)
	}

	return cond
}
