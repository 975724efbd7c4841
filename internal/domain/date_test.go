package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		wantErr  bool
	}{
		{"2025-12-31", NewDate(2025, time.December, 31), false},
		{"2025-6-1", NewDate(2025, time.June, 1), false},
		{"2025-06-01T23:30:00+02:00", NewDate(2025, time.June, 1), false},
		{"", Date{}, true},
		{"31/12/2025", Date{}, true},
		{"2025-13-01", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidDate))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestNewDate_Normalizes(t *testing.T) {
	assert.Equal(t, NewDate(2025, time.March, 1), NewDate(2025, time.February, 29))
	assert.Equal(t, NewDate(2024, time.December, 31), NewDate(2025, time.January, 0))
}

func TestDateOf_UsesLocation(t *testing.T) {
	// 23:30 UTC on the 14th is already the 15th in Tokyo
	instant := time.Date(2025, time.March, 14, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, NewDate(2025, time.March, 14), DateOf(instant, time.UTC))
	assert.Equal(t, NewDate(2025, time.March, 15), DateOf(instant, tokyo))
	assert.Equal(t, NewDate(2025, time.March, 14), DateOf(instant, nil))
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2025, time.March, 14)

	assert.Equal(t, NewDate(2025, time.March, 8), d.AddDays(-6))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.False(t, d.Before(d))
	assert.Equal(t, time.Friday, d.Weekday())
	assert.Equal(t, "2025-03-14", d.String())
	assert.Equal(t, "14 Mar 2025", d.Format("2 Jan 2006"))
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 14, d.Day())
	assert.False(t, d.IsZero())
	assert.True(t, Date{}.IsZero())
}

func TestDate_Midnight(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	m := NewDate(2025, time.March, 14).Midnight(tokyo)

	assert.Equal(t, time.Date(2025, time.March, 13, 15, 0, 0, 0, time.UTC), m.UTC())
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Deadline Date `json:"deadline"`
	}

	data, err := json.Marshal(wrapper{Deadline: NewDate(2025, time.June, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"deadline":"2025-06-01"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"deadline":"2026-01-31"}`), &w))
	assert.Equal(t, NewDate(2026, time.January, 31), w.Deadline)

	assert.Error(t, json.Unmarshal([]byte(`{"deadline":"someday"}`), &w))
	assert.Error(t, json.Unmarshal([]byte(`{"deadline":20260131}`), &w))
}
