package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", d.String())
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 3, d.Month())

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(b))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-12-31"`), &decoded))
	assert.Equal(t, "2024-12-31", decoded.String())

	assert.Error(t, json.Unmarshal([]byte(`"notadate"`), &decoded))
}

func TestDate_Value(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)

	v, err := d.Value()
	require.NoError(t, err)
	// Stored as TEXT so SQL date functions work on the raw column.
	assert.Equal(t, "2024-03-15", v)
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2024-03-15"))
	assert.Equal(t, "2024-03-15", d.String())

	require.NoError(t, d.Scan([]byte("2024-06-01")))
	assert.Equal(t, "2024-06-01", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-07-04", d.String())

	// Some drivers return a full datetime string; only the date part counts.
	require.NoError(t, d.Scan("2024-03-15 00:00:00"))
	assert.Equal(t, "2024-03-15", d.String())

	assert.Error(t, d.Scan(12345))
}
