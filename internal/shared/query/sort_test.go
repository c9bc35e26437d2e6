package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortOrderBy(t *testing.T) {
	sort := Sort{
		Allowed: map[string]string{
			"title":      "b.title",
			"created_at": "b.created_at",
		},
		Default:    "title",
		TieBreaker: "b.id",
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty uses default", "", "b.title ASC, b.id"},
		{"ascending", "created_at", "b.created_at ASC, b.id"},
		{"descending", "-created_at", "b.created_at DESC, b.id"},
		{"unknown falls back", "isbn", "b.title ASC, b.id"},
		{"unknown descending falls back ascending", "-isbn", "b.title ASC, b.id"},
		{"whitespace trimmed", "  title ", "b.title ASC, b.id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sort.OrderBy(tt.raw))
		})
	}
}

func TestSortDescendingDefault(t *testing.T) {
	sort := Sort{
		Allowed:    map[string]string{"created_at": "r.created_at"},
		Default:    "-created_at",
		TieBreaker: "r.id",
	}

	assert.Equal(t, "r.created_at DESC, r.id", sort.OrderBy(""))
	assert.Equal(t, "r.created_at DESC, r.id", sort.OrderBy("bogus"))
}
