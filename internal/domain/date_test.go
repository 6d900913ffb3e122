package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateIsValid(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want bool
	}{
		{"month zero", NewDate(0, 15, 2000), false},
		{"month thirteen", NewDate(13, 15, 2020), false},
		{"day 31 in a 30-day month", NewDate(4, 31, 2023), false},
		{"feb 29 in a non-leap year", NewDate(2, 29, 2023), false},
		{"feb 29 in a leap year", NewDate(2, 29, 2020), true},
		{"feb 29 in a centennial non-leap year", NewDate(2, 29, 1900), false},
		{"feb 29 in a quatercentennial leap year", NewDate(2, 29, 2000), true},
		{"ordinary date", NewDate(7, 4, 1999), true},
		{"day zero", NewDate(7, 0, 1999), false},
		{"december 31", NewDate(12, 31, 2024), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.date.IsValid())
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2/19/2000")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2, 19, 2000), d)

	_, err = ParseDate("2-19-2000")
	require.ErrorIs(t, err, ErrMalformedDate)

	_, err = ParseDate("2/x/2000")
	require.ErrorIs(t, err, ErrMalformedDate)
}

func TestDateCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{"earlier year", NewDate(5, 1, 1999), NewDate(5, 1, 2000), -1},
		{"later year", NewDate(5, 1, 2001), NewDate(5, 1, 2000), 1},
		{"earlier month", NewDate(4, 30, 2000), NewDate(5, 1, 2000), -1},
		{"earlier day", NewDate(5, 1, 2000), NewDate(5, 2, 2000), -1},
		{"equal", NewDate(5, 1, 2000), NewDate(5, 1, 2000), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
		})
	}
}

func TestDateAgeOn(t *testing.T) {
	dob := NewDate(6, 15, 2000)

	tests := []struct {
		name string
		on   Date
		want int
	}{
		{"day before birthday", NewDate(6, 14, 2024), 23},
		{"on birthday", NewDate(6, 15, 2024), 24},
		{"day after birthday", NewDate(6, 16, 2024), 24},
		{"earlier month", NewDate(1, 1, 2024), 23},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dob.AgeOn(tc.on))
		})
	}
}

func TestDateDayNumber(t *testing.T) {
	tests := []struct {
		name     string
		from, to Date
		wantDays int
	}{
		{"same day", NewDate(1, 1, 2024), NewDate(1, 1, 2024), 0},
		{"one day", NewDate(1, 1, 2024), NewDate(1, 2, 2024), 1},
		{"across leap february", NewDate(2, 1, 2024), NewDate(3, 1, 2024), 29},
		{"across non-leap february", NewDate(2, 1, 2023), NewDate(3, 1, 2023), 28},
		{"full leap year", NewDate(1, 1, 2024), NewDate(1, 1, 2025), 366},
		{"full common year", NewDate(1, 1, 2023), NewDate(1, 1, 2024), 365},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantDays, tc.to.DayNumber()-tc.from.DayNumber())
		})
	}
}

func TestDateAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		date   Date
		months int
		want   Date
	}{
		{"within year", NewDate(1, 15, 2024), 3, NewDate(4, 15, 2024)},
		{"across year end", NewDate(11, 10, 2024), 3, NewDate(2, 10, 2025)},
		{"clamped to month end", NewDate(1, 31, 2024), 3, NewDate(4, 30, 2024)},
		{"clamped to leap february", NewDate(11, 30, 2023), 3, NewDate(2, 29, 2024)},
		{"twelve months", NewDate(6, 1, 2024), 12, NewDate(6, 1, 2025)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.date.AddMonths(tc.months))
		})
	}
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2/5/2025", NewDate(2, 5, 2025).String())
}
