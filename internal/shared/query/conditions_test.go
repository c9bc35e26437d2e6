package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionsEmpty(t *testing.T) {
	cond := &Conditions{}

	assert.Equal(t, "TRUE", cond.Where())
	assert.Empty(t, cond.Args())
	assert.Equal(t, 1, cond.NextIndex())
}

func TestConditionsAdd(t *testing.T) {
	cond := &Conditions{}
	cond.Add("b.pages >= $%d", 100)
	cond.Add("b.pages <= $%d", 500)

	assert.Equal(t, "b.pages >= $1 AND b.pages <= $2", cond.Where())
	assert.Equal(t, []interface{}{100, 500}, cond.Args())
	assert.Equal(t, 3, cond.NextIndex())
}

func TestConditionsAddMultipleValues(t *testing.T) {
	cond := &Conditions{}
	cond.ILike("b.title", "go")
	cond.Add("(b.title ILIKE $%d OR b.synopsis ILIKE $%d)", "%x%", "%x%")

	assert.Equal(t, "b.title ILIKE $1 AND (b.title ILIKE $2 OR b.synopsis ILIKE $3)", cond.Where())
	assert.Len(t, cond.Args(), 3)
}

func TestConditionsILike(t *testing.T) {
	cond := &Conditions{}
	cond.ILike("p.name", "pen")

	assert.Equal(t, "p.name ILIKE $1", cond.Where())
	assert.Equal(t, []interface{}{"%pen%"}, cond.Args())
}

func TestConditionsSearch(t *testing.T) {
	cond := &Conditions{}
	cond.Search([]string{"b.title", "b.synopsis"}, "go")

	assert.Equal(t, "(b.title ILIKE $1 OR b.synopsis ILIKE $1)", cond.Where())
	assert.Equal(t, []interface{}{"%go%"}, cond.Args())
}
