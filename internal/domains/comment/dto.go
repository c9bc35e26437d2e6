package comment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/types"
	"booktracker-backend/internal/shared/validate"
)

// CommentRequest is the write shape. The review comes from the
// nested URL path; only the thread parent is carried in the body.
type CommentRequest struct {
	CommentText string     `json:"comment_text"`
	ParentID    *uuid.UUID `json:"parent_comment"`
}

func (r CommentRequest) Validate() error {
	return validate.OrNil(validate.FieldErrors(validation.ValidateStruct(&r,
		validation.Field(&r.CommentText,
			validation.Required.Error("comment_text is required"),
			validation.By(validate.MinTrimmed(3)),
		),
	)))
}

// Filter holds the recognized list parameters for comments
type Filter struct {
	CommentText   string
	User          string
	CreatedAfter  *types.Date
	CreatedBefore *types.Date

	// ReviewID restricts the list to one review's thread; uuid.Nil
	// leaves the list unrestricted (top-level /comments).
	ReviewID uuid.UUID

	OrderBy    string
	Pagination query.Pagination
}

// CommentSort is the ordering allow-list for comments. Oldest
// first by default so a thread reads top to bottom.
var CommentSort = query.Sort{
	Allowed: map[string]string{
		"created_at": "c.created_at",
		"updated_at": "c.updated_at",
	},
	Default:    "created_at",
	TieBreaker: "c.id",
}

func (f *Filter) BuildWhere() *query.Conditions {
	cond := &query.Conditions{}

	if f.ReviewID != uuid.Nil {
		cond.Add("c.review_id = $%d", f.ReviewID)
	}
	if f.CommentText != "" {
		cond.ILike("c.comment_text", f.CommentText)
	}
	if f.User != "" {
		cond.ILike("u.username", f.User)
	}
	if f.CreatedAfter != nil {
		cond.Add("c.created_at >= $%d", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		cond.Add("c.created_at <= $%d", *f.CreatedBefore)
	}

	return cond
}
