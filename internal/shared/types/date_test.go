package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2021-03-14", d.String())

	_, err = ParseDate("14/03/2021")
	assert.Error(t, err)

	_, err = ParseDate("2021-13-01")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(1999, time.December, 31)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1999-12-31"`, string(raw))

	var parsed Date
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, parsed.Equal(d.Time))
}

func TestDateUnmarshalNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2020-06-01", d.String())

	var fromString Date
	require.NoError(t, fromString.Scan("2020-06-02"))
	assert.Equal(t, "2020-06-02", fromString.String())

	var fromNil Date
	require.NoError(t, fromNil.Scan(nil))
	assert.True(t, fromNil.IsZero())

	var bad Date
	assert.Error(t, bad.Scan(42))
}

func TestDateOrdering(t *testing.T) {
	earlier := NewDate(2000, time.January, 1)
	later := NewDate(2000, time.January, 2)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
}
