package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"booktracker-backend/internal/shared/types"
)

var (
	isbnPattern = regexp.MustCompile(`^(\d{13}|\d{9}[\dX])$`)

	// http(s) + domain/localhost/IPv4 + optional port + optional path
	urlPattern = regexp.MustCompile(`(?i)^https?://` +
		`(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+[A-Z]{2,6}\.?|` +
		`localhost|` +
		`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
		`(?::\d+)?` +
		`(?:/?|[/?]\S+)$`)

	separatorPattern = regexp.MustCompile(`[-\s]`)
)

const isbnMessage = "must be an ISBN-10 or ISBN-13; separators are allowed " +
	"(valid examples: '0-123-45678-9', '978-0-123-45678-9', '0123456789')"

// NormalizeISBN strips hyphens and whitespace and upper-cases a
// trailing check character. Uniqueness is defined over this form.
func NormalizeISBN(raw string) string {
	return strings.ToUpper(separatorPattern.ReplaceAllString(raw, ""))
}

// ValidISBN reports whether the value is a well-formed ISBN-10 or
// ISBN-13 once separators are removed.
func ValidISBN(raw string) bool {
	return isbnPattern.MatchString(NormalizeISBN(raw))
}

// ISBN is an ozzo rule for ISBN-10/ISBN-13 fields
var ISBN = validation.NewStringRule(ValidISBN, isbnMessage)

// AbsoluteURL is an ozzo rule for optional http(s) URL fields
var AbsoluteURL = validation.NewStringRule(func(s string) bool {
	return urlPattern.MatchString(s)
}, "must be a valid URL starting with http:// or https://")

// MinTrimmed returns an ozzo rule requiring at least min
// characters once surrounding whitespace is removed. Use with
// validation.By on free-text fields.
func MinTrimmed(min int) func(interface{}) error {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if utf8.RuneCountInString(strings.TrimSpace(s)) < min {
			return fmt.Errorf("must be at least %d characters long", min)
		}
		return nil
	}
}

// NotFutureDate is an ozzo rule rejecting calendar dates after
// today. Nil values are skipped.
func NotFutureDate(value interface{}) error {
	d, ok := dateOf(value)
	if !ok {
		return nil
	}
	if d.After(types.Today()) {
		return errors.New("must not be in the future")
	}
	return nil
}

// NotFutureTime is the timestamp counterpart of NotFutureDate
func NotFutureTime(value interface{}) error {
	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return nil
		}
		t = *v
	default:
		return nil
	}
	if t.After(time.Now()) {
		return errors.New("must not be in the future")
	}
	return nil
}

func dateOf(value interface{}) (types.Date, bool) {
	switch v := value.(type) {
	case types.Date:
		return v, true
	case *types.Date:
		if v == nil {
			return types.Date{}, false
		}
		return *v, true
	default:
		return types.Date{}, false
	}
}
