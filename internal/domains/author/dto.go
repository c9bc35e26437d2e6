package author

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"booktracker-backend/internal/shared/types"
	"booktracker-backend/internal/shared/validate"
)

// AuthorRequest is the write shape for create and update
type AuthorRequest struct {
	Name       string      `json:"name"`
	BirthDate  *types.Date `json:"birth_date"`
	DeathDate  *types.Date `json:"death_date"`
	Biography  string      `json:"biography"`
	PictureURL string      `json:"picture_url"`
}

func (r AuthorRequest) Validate() error {
	fieldErrors := validate.FieldErrors(validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.BirthDate, validation.By(validate.NotFutureDate)),
		validation.Field(&r.DeathDate, validation.By(validate.NotFutureDate)),
		validation.Field(&r.PictureURL,
			validation.When(r.PictureURL != "", validate.AbsoluteURL),
		),
	))

	// Chronology check only applies once both dates are present
	if r.BirthDate != nil && r.DeathDate != nil && !r.BirthDate.Before(*r.DeathDate) {
		fieldErrors["death_date"] = errors.New("death date must be after birth date")
	}

	return validate.OrNil(fieldErrors)
}
