package review

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantField string
	}{
		{name: "valid", text: "A slow start but the ending pays off."},
		{name: "empty", text: "", wantField: "review_text"},
		{name: "too short", text: "Nice", wantField: "review_text"},
		{name: "whitespace padding ignored", text: "   Great!   ", wantField: "review_text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ReviewRequest{ReviewText: tt.text}.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var fields validation.Errors
			require.ErrorAs(t, err, &fields)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestFilterBuildWhereScopesToRequester(t *testing.T) {
	f := Filter{UserID: uuid.Nil}
	cond := f.BuildWhere()

	assert.Equal(t, "r.user_id = $1", cond.Where())
	assert.Equal(t, []interface{}{uuid.Nil}, cond.Args())
}

func TestFilterBuildWhereCombines(t *testing.T) {
	f := Filter{
		UserID: uuid.New(),
		User:   "alice",
		Book:   "dune",
	}
	cond := f.BuildWhere()

	assert.Contains(t, cond.Where(), "r.user_id = $1")
	assert.Contains(t, cond.Where(), "u.username ILIKE $2")
	assert.Contains(t, cond.Where(), "b.title ILIKE $3")
	assert.Len(t, cond.Args(), 3)
}

func TestReviewSortOrdering(t *testing.T) {
	assert.Equal(t, "r.created_at DESC, r.id", ReviewSort.OrderBy(""))
	assert.Equal(t, "r.updated_at ASC, r.id", ReviewSort.OrderBy("updated_at"))
	assert.Equal(t, "r.created_at DESC, r.id", ReviewSort.OrderBy("rating"))
}
