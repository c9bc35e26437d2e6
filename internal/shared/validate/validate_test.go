package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"booktracker-backend/internal/shared/types"
)

func TestNormalizeISBN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hyphenated isbn13", "978-0-123-45678-9", "9780123456789"},
		{"bare isbn13", "9780123456789", "9780123456789"},
		{"hyphenated isbn10", "0-123-45678-9", "0123456789"},
		{"spaces", "978 0 123 45678 9", "9780123456789"},
		{"lowercase check char", "0-123-45678-x", "012345678X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeISBN(tt.in))
		})
	}
}

func TestValidISBN(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
	}{
		{"isbn13 with separators", "978-0-123-45678-9", true},
		{"isbn13 bare", "9780123456789", true},
		{"isbn10 bare", "0123456789", true},
		{"isbn10 with X", "012345678X", true},
		{"isbn10 with lowercase x", "012345678x", true},
		{"too short", "123456789", false},
		{"twelve digits", "978012345678", false},
		{"letters inside", "97801234A6789", false},
		{"X in isbn13", "978012345678X", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidISBN(tt.in))
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
	}{
		{"https domain", "https://example.com", true},
		{"http domain with path", "http://example.com/covers/1.jpg", true},
		{"localhost with port", "http://localhost:8080/x", true},
		{"ipv4", "http://192.168.1.10/logo.png", true},
		{"missing scheme", "example.com/x", false},
		{"ftp scheme", "ftp://example.com", false},
		{"bare word", "not-a-url", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AbsoluteURL.Validate(tt.in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestMinTrimmed(t *testing.T) {
	rule := MinTrimmed(10)

	assert.NoError(t, rule("exactly ten"))
	assert.NoError(t, rule("  padded but long enough  "))
	assert.Error(t, rule("short"))
	assert.Error(t, rule("         a         "))
}

func TestNotFutureDate(t *testing.T) {
	past := types.NewDate(2000, 1, 2)
	future := types.NewDate(2999, 1, 2)

	assert.NoError(t, NotFutureDate(past))
	assert.NoError(t, NotFutureDate(&past))
	assert.NoError(t, NotFutureDate((*types.Date)(nil)))
	assert.Error(t, NotFutureDate(future))
	assert.Error(t, NotFutureDate(&future))
}
