package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{
		2000: true,
		1900: false,
		2024: true,
		2023: false,
		2100: false,
		2400: true,
	}
	for year, want := range cases {
		assert.Equal(t, want, IsLeapYear(year), "year %d", year)
		assert.Equal(t, want, NewDate(year, 1, 1).IsLeapYear(), "year %d", year)
	}
}

func TestDateIsValid(t *testing.T) {
	// Every well-formed date across a leap and a common year.
	for _, year := range []int{2023, 2024} {
		for month := 1; month <= 12; month++ {
			d := NewDate(year, month, 1)
			for day := 1; day <= d.DaysInMonth(); day++ {
				assert.True(t, NewDate(year, month, day).IsValid(), "%d-%d-%d", year, month, day)
			}
		}
	}

	invalid := []Date{
		NewDate(2024, 0, 1),
		NewDate(2024, 13, 1),
		NewDate(2024, 1, 0),
		NewDate(2024, 1, 32),
		NewDate(2024, 4, 31),
		NewDate(2023, 2, 29),
		NewDate(2024, 2, 30),
		NewDate(2024, -1, 10),
	}
	for _, d := range invalid {
		assert.False(t, d.IsValid(), d.Format("Y-M-D"))
	}
}

func TestDateFormat(t *testing.T) {
	d := NewDate(2024, 2, 1)
	tests := []struct {
		layout string
		want   string
	}{
		{"Y-M-D", "2024-2-1"},
		{"D-M-Y", "1-2-2024"},
		{"Y/M/D", "2024/2/1"},
		{"D/M/Y", "1/2/2024"},
		{"Y.M.D", "2024.2.1"},
		{"D.M.Y", "1.2.2024"},
		{"y-m-d", "2024-2-1"},
		{"", "1/2/2024"},
		{"M/D/Y", "1/2/2024"},
		{"nonsense", "1/2/2024"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.Format(tt.layout), "layout %q", tt.layout)
	}
	assert.Equal(t, "1/2/2024", d.String())
}

func TestDateMakeValid(t *testing.T) {
	assert.Equal(t, NewDate(2024, 12, 31), NewDate(2024, 14, 40).MakeValid())
	assert.Equal(t, NewDate(2024, 1, 1), NewDate(2024, 0, 0).MakeValid())
	assert.Equal(t, NewDate(2023, 2, 28), NewDate(2023, 2, 31).MakeValid())
	assert.Equal(t, NewDate(2024, 2, 29), NewDate(2024, 2, 31).MakeValid())

	valid := NewDate(2023, 5, 24)
	assert.Equal(t, valid, valid.MakeValid())
}

func TestDateTime(t *testing.T) {
	d := NewDate(2023, 9, 16)
	tm, err := d.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.September, 16, 0, 0, 0, 0, time.UTC), tm)
	assert.Equal(t, d, DateFromTime(tm))

	_, err = NewDate(2023, 2, 29).Time()
	assert.Error(t, err)
}

func TestDateFromTimeUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	tm := time.Date(2024, time.March, 1, 5, 0, 0, 0, loc)
	assert.Equal(t, NewDate(2024, 2, 29), DateFromTime(tm))
}
