package readingstatus

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktracker-backend/internal/shared/types"
	"booktracker-backend/internal/shared/validate"
)

func datePtr(year, month, day int) *types.Date {
	d := types.NewDate(year, time.Month(month), day)
	return &d
}

func ratingPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func fieldKeys(t *testing.T, err error) validation.Errors {
	t.Helper()
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	return verrs
}

func validCompleted() ReadingStatusRequest {
	return ReadingStatusRequest{
		BookID:     uuid.New(),
		Status:     StatusCompleted,
		Rating:     ratingPtr(4.5),
		StartedAt:  datePtr(2024, 1, 10),
		FinishedAt: datePtr(2024, 2, 20),
	}
}

func TestReadingStatusRequestValid(t *testing.T) {
	assert.NoError(t, validCompleted().Validate())

	reading := ReadingStatusRequest{
		BookID:    uuid.New(),
		Status:    StatusReading,
		StartedAt: datePtr(2024, 1, 10),
	}
	assert.NoError(t, reading.Validate())

	notStarted := ReadingStatusRequest{
		BookID: uuid.New(),
		Status: StatusNotStarted,
	}
	assert.NoError(t, notStarted.Validate())
}

func TestReadingRequiresStartedAt(t *testing.T) {
	req := ReadingStatusRequest{BookID: uuid.New(), Status: StatusReading}

	verrs := fieldKeys(t, req.Validate())
	assert.Contains(t, verrs, validate.NonFieldKey)
}

func TestCompletedRequiresFinishedAt(t *testing.T) {
	req := ReadingStatusRequest{
		BookID:    uuid.New(),
		Status:    StatusCompleted,
		StartedAt: datePtr(2024, 1, 10),
	}

	verrs := fieldKeys(t, req.Validate())
	assert.Contains(t, verrs, validate.NonFieldKey)
}

func TestNotStartedForbidsDates(t *testing.T) {
	req := ReadingStatusRequest{
		BookID:    uuid.New(),
		Status:    StatusNotStarted,
		StartedAt: datePtr(2024, 1, 10),
	}

	verrs := fieldKeys(t, req.Validate())
	assert.Contains(t, verrs, validate.NonFieldKey)
}

func TestStartedMustPrecedeFinished(t *testing.T) {
	req := validCompleted()
	req.StartedAt = datePtr(2024, 3, 1)
	req.FinishedAt = datePtr(2024, 2, 1)

	verrs := fieldKeys(t, req.Validate())
	assert.Contains(t, verrs, validate.NonFieldKey)
}

func TestRatingOnlyWhenCompleted(t *testing.T) {
	req := ReadingStatusRequest{
		BookID:    uuid.New(),
		Status:    StatusReading,
		Rating:    ratingPtr(4.0),
		StartedAt: datePtr(2024, 1, 10),
	}

	// The violation is reported at the status field
	verrs := fieldKeys(t, req.Validate())
	assert.Contains(t, verrs, "status")
}

func TestRatingScale(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		valid  bool
	}{
		{"half point", 0.5, true},
		{"whole", 3.0, true},
		{"top", 5.0, true},
		{"quarter step", 3.25, false},
		{"zero", 0, false},
		{"too high", 5.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCompleted()
			req.Rating = ratingPtr(tt.rating)

			err := req.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				verrs := fieldKeys(t, err)
				assert.Contains(t, verrs, "rating")
			}
		})
	}
}

func TestUnknownStatusRejected(t *testing.T) {
	req := ReadingStatusRequest{BookID: uuid.New(), Status: "rereading"}

	verrs := fieldKeys(t, req.Validate())
	assert.Contains(t, verrs, "status")
}

func TestBookRequired(t *testing.T) {
	req := ReadingStatusRequest{Status: StatusNotStarted}

	verrs := fieldKeys(t, req.Validate())
	assert.Contains(t, verrs, "book")
}

func TestNoFutureDates(t *testing.T) {
	req := ReadingStatusRequest{
		BookID:    uuid.New(),
		Status:    StatusReading,
		StartedAt: datePtr(2999, 1, 1),
	}

	verrs := fieldKeys(t, req.Validate())
	assert.Contains(t, verrs, "started_at")
}
