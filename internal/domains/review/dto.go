package review

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/types"
	"booktracker-backend/internal/shared/validate"
)

// ReviewRequest is the write shape. The book comes from the nested
// URL path, never from the body.
type ReviewRequest struct {
	ReviewText string `json:"review_text"`
}

func (r ReviewRequest) Validate() error {
	return validate.OrNil(validate.FieldErrors(validation.ValidateStruct(&r,
		validation.Field(&r.ReviewText,
			validation.Required.Error("review_text is required"),
			validation.By(validate.MinTrimmed(10)),
		),
	)))
}

// Filter holds the recognized list parameters for reviews
type Filter struct {
	ReviewText    string
	User          string
	Book          string
	CreatedAfter  *types.Date
	CreatedBefore *types.Date

	// UserID scopes the list to the requester's own reviews. An
	// anonymous caller carries uuid.Nil and matches no rows.
	UserID uuid.UUID

	OrderBy    string
	Pagination query.Pagination
}

// ReviewSort is the ordering allow-list for /reviews
var ReviewSort = query.Sort{
	Allowed: map[string]string{
		"created_at": "r.created_at",
		"updated_at": "r.updated_at",
	},
	Default:    "-created_at",
	TieBreaker: "r.id",
}

func (f *Filter) BuildWhere() *query.Conditions {
	cond := &query.Conditions{}

	cond.Add("r.user_id = $%d", f.UserID)
	if f.ReviewText != "" {
		cond.ILike("r.review_text", f.ReviewText)
	}
	if f.User != "" {
		cond.ILike("u.username", f.User)
	}
	if f.Book != "" {
		cond.ILike("b.title", f.Book)
	}
	if f.CreatedAfter != nil {
		cond.Add("r.created_at >= $%d", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		cond.Add("r.created_at <= $%d", *f.CreatedBefore)
	}

	return cond
}
