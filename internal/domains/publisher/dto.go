package publisher

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"booktracker-backend/internal/shared/validate"
)

type PublisherRequest struct {
	Name           string `json:"name"`
	Country        string `json:"country"`
	FoundationYear *int   `json:"foundation_year"`
	LogoURL        string `json:"logo_url"`
}

func (r PublisherRequest) Validate() error {
	currentYear := time.Now().Year()

	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Country, validation.Length(0, 100)),
		validation.Field(&r.FoundationYear,
			validation.Min(1000).Error("foundation year must be 1000 or later"),
			validation.Max(currentYear).Error("foundation year must not be in the future"),
		),
		validation.Field(&r.LogoURL,
			validation.When(r.LogoURL != "", validate.AbsoluteURL),
		),
	)
}
