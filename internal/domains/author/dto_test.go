package author

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktracker-backend/internal/shared/types"
)

func datePtr(year, month, day int) *types.Date {
	d := types.NewDate(year, time.Month(month), day)
	return &d
}

func TestAuthorRequestValid(t *testing.T) {
	req := AuthorRequest{
		Name:       "Ursula K. Le Guin",
		BirthDate:  datePtr(1929, 10, 21),
		DeathDate:  datePtr(2018, 1, 22),
		Biography:  "American author.",
		PictureURL: "https://example.com/leguin.jpg",
	}

	assert.NoError(t, req.Validate())
}

func TestAuthorRequestNameRequired(t *testing.T) {
	err := AuthorRequest{}.Validate()
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "name")
}

func TestAuthorRequestDateOrder(t *testing.T) {
	req := AuthorRequest{
		Name:      "Test Author",
		BirthDate: datePtr(1990, 1, 1),
		DeathDate: datePtr(1980, 1, 1),
	}

	err := req.Validate()
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "death_date")
}

func TestAuthorRequestFutureDates(t *testing.T) {
	req := AuthorRequest{
		Name:      "Test Author",
		BirthDate: datePtr(2999, 1, 1),
	}

	err := req.Validate()
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "birth_date")
}

func TestAuthorRequestOneDateOnly(t *testing.T) {
	// Chronology is only checked once both dates exist
	req := AuthorRequest{
		Name:      "Living Author",
		BirthDate: datePtr(1960, 5, 5),
	}

	assert.NoError(t, req.Validate())
}

func TestAuthorRequestBadPictureURL(t *testing.T) {
	req := AuthorRequest{
		Name:       "Test Author",
		PictureURL: "not-a-url",
	}

	err := req.Validate()
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "picture_url")
}
