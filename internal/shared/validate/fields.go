package validate

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NonFieldKey groups errors that do not belong to a single field,
// mirroring how cross-field failures are reported.
const NonFieldKey = "non_field_errors"

// FieldErrors converts a ValidateStruct result into a mutable
// field-keyed map so callers can merge cross-field checks before
// returning.
func FieldErrors(err error) validation.Errors {
	if err == nil {
		return validation.Errors{}
	}
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		return fieldErrors
	}
	return validation.Errors{NonFieldKey: err}
}

// OrNil returns the map as an error, or nil when empty
func OrNil(fieldErrors validation.Errors) error {
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
