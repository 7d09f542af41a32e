package model

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time component.
type Date struct {
	time time.Time
}

// NewDate validates the year/month/day combination against the proleptic
// Gregorian calendar. time.Date normalizes out-of-range values (February 30
// becomes March 2), so the result is compared back against the inputs.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	if y != year || m != month || d != day {
		return Date{}, fmt.Errorf("%04d-%02d-%02d is not a valid date", year, month, day)
	}
	return Date{time: t}, nil
}

// MustDate is like NewDate but panics on invalid input.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromTime truncates t to its calendar date.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Year returns the year, which may be negative.
func (d Date) Year() int { return d.time.Year() }

// Month returns the month.
func (d Date) Month() time.Month { return d.time.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.time.Day() }

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time { return d.time }

// Equal reports whether two dates are the same calendar day.
func (d Date) Equal(other Date) bool { return d.time.Equal(other.time) }

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.time.Before(other.time) }

// String renders the date as zero-padded YYYY-MM-DD. Negative years keep
// their leading minus sign.
func (d Date) String() string {
	year := d.time.Year()
	if year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -year, d.time.Month(), d.time.Day())
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, d.time.Month(), d.time.Day())
}
