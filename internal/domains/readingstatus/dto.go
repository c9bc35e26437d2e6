package readingstatus

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/types"
	"booktracker-backend/internal/shared/validate"
)

// ReadingStatusRequest is the write shape; the book is carried as
// an identifier.
type ReadingStatusRequest struct {
	BookID     uuid.UUID        `json:"book"`
	Status     string           `json:"status"`
	Rating     *decimal.Decimal `json:"rating"`
	StartedAt  *types.Date      `json:"started_at"`
	FinishedAt *types.Date      `json:"finished_at"`
}

// Validate evaluates the field rules plus the status/date matrix.
// Date requirements driven by the status land under
// non_field_errors; a rating on an uncompleted book is attributed
// to the status field.
func (r ReadingStatusRequest) Validate() error {
	fieldErrors := validate.FieldErrors(validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusNotStarted, StatusReading, StatusCompleted).
				Error("status must be one of: not_started, reading, completed"),
		),
		validation.Field(&r.Rating, validation.By(validRating)),
		validation.Field(&r.StartedAt, validation.By(validate.NotFutureDate)),
		validation.Field(&r.FinishedAt, validation.By(validate.NotFutureDate)),
	))

	if r.BookID == uuid.Nil {
		fieldErrors["book"] = errors.New("book is required")
	}

	switch r.Status {
	case StatusReading:
		if r.StartedAt == nil {
			fieldErrors[validate.NonFieldKey] = errors.New("started_at is required when status is reading")
		}
	case StatusCompleted:
		if r.FinishedAt == nil {
			fieldErrors[validate.NonFieldKey] = errors.New("finished_at is required when status is completed")
		}
	case StatusNotStarted:
		if r.StartedAt != nil || r.FinishedAt != nil {
			fieldErrors[validate.NonFieldKey] = errors.New("started_at and finished_at must be empty when status is not_started")
		}
	}

	if r.StartedAt != nil && r.FinishedAt != nil && !r.StartedAt.Before(*r.FinishedAt) {
		fieldErrors[validate.NonFieldKey] = errors.New("started_at must be before finished_at")
	}

	if r.Rating != nil && r.Status != StatusCompleted {
		fieldErrors["status"] = errors.New("rating can only be set when status is completed")
	}

	return validate.OrNil(fieldErrors)
}

// validRating accepts 0.5 through 5.0 in half-point steps
func validRating(value interface{}) error {
	var rating decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		rating = v
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		rating = *v
	default:
		return nil
	}

	half := decimal.NewFromFloat(0.5)
	if rating.LessThan(half) || rating.GreaterThan(decimal.NewFromInt(5)) {
		return errors.New("rating must be between 0.5 and 5.0")
	}
	if !rating.Div(half).IsInteger() {
		return errors.New("rating must be in increments of 0.5")
	}
	return nil
}

// Filter holds the recognized list parameters. UserID always
// carries the requester; the list is never cross-user.
type Filter struct {
	Status         string
	Book           string
	MinRating      *decimal.Decimal
	MaxRating      *decimal.Decimal
	StartedAfter   *types.Date
	StartedBefore  *types.Date
	FinishedAfter  *types.Date
	FinishedBefore *types.Date

	UserID uuid.UUID

	OrderBy    string
	Pagination query.Pagination
}

// ReadingStatusSort is the ordering allow-list for
// /reading-statuses
var ReadingStatusSort = query.Sort{
	Allowed: map[string]string{
		"started_at":  "rs.started_at",
		"finished_at": "rs.finished_at",
		"rating":      "rs.rating",
		"created_at":  "rs.created_at",
	},
	Default:    "-started_at",
	TieBreaker: "rs.id",
}

func (f *Filter) BuildWhere() *query.Conditions {
	cond := &query.Conditions{}

	cond.Add("rs.user_id = $%d", f.UserID)
	if f.Status != "" {
		cond.Add("rs.status = $%d", f.Status)
	}
	if f.Book != "" {
		cond.ILike("b.title", f.Book)
	}
	if f.MinRating != nil {
		cond.Add("rs.rating >= $%d", *f.MinRating)
	}
	if f.MaxRating != nil {
		cond.Add("rs.rating <= $%d", *f.MaxRating)
	}
	if f.StartedAfter != nil {
		cond.Add("rs.started_at >= $%d", *f.StartedAfter)
	}
	if f.StartedBefore != nil {
		cond.Add("rs.started_at <= $%d", *f.StartedBefore)
	}
	if f.FinishedAfter != nil {
		cond.Add("rs.finished_at >= $%d", *f.FinishedAfter)
	}
	if f.FinishedBefore != nil {
		cond.Add("rs.finished_at <= $%d", *f.FinishedBefore)
	}

	return cond
}
