package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Date is a calendar date with no time-of-day. It is deliberately permissive:
// NewDate accepts any values and IsValid reports whether they make sense.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate builds a Date without validating it.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateFromTime returns the UTC calendar date of t.
func DateFromTime(t time.Time) Date {
	t = t.UTC()
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// IsLeapYear reports whether the date's year is a leap year.
func (d Date) IsLeapYear() bool {
	return IsLeapYear(d.Year)
}

// DaysInMonth returns the number of days in the date's month, or 0 when the
// month is out of range.
func (d Date) DaysInMonth() int {
	switch d.Month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if d.IsLeapYear() {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func (d Date) IsValid() bool {
	return d.Month >= 1 && d.Month <= 12 && d.Day >= 1 && d.Day <= d.DaysInMonth()
}

// MakeValid clamps the month into [1,12] and then the day into the valid
// range for that month.
func (d Date) MakeValid() Date {
	d.Month = clamp(d.Month, 1, 12)
	d.Day = clamp(d.Day, 1, d.DaysInMonth())
	return d
}

// Format renders the date in one of the Y/M/D orderings joined by "-", "/"
// or ".". The layout is matched case-insensitively; anything unrecognised
// falls back to D/M/Y.
func (d Date) Format(layout string) string {
	switch strings.ToLower(layout) {
	case "y-m-d":
		return fmt.Sprintf("%d-%d-%d", d.Year, d.Month, d.Day)
	case "d-m-y":
		return fmt.Sprintf("%d-%d-%d", d.Day, d.Month, d.Year)
	case "y/m/d":
		return fmt.Sprintf("%d/%d/%d", d.Year, d.Month, d.Day)
	case "y.m.d":
		return fmt.Sprintf("%d.%d.%d", d.Year, d.Month, d.Day)
	case "d.m.y":
		return fmt.Sprintf("%d.%d.%d", d.Day, d.Month, d.Year)
	default:
		return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
	}
}

func (d Date) String() string {
	return d.Format("")
}

// Time converts the date to midnight UTC. Invalid dates are an error rather
// than being normalised the way time.Date would.
func (d Date) Time() (time.Time, error) {
	if !d.IsValid() {
		return time.Time{}, errors.Errorf("invalid date %s", d.Format("Y-M-D"))
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), nil
}

// MarshalYAML writes the date as Y-M-D.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format("Y-M-D"), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
