package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // permissive read format, allows single-digit month/day

// DateFormat is the ISO-8601 calendar date layout used on the wire
const DateFormat = "2006-01-02"

// Date is a calendar date with day granularity and no time zone. Two Dates
// are equal when they name the same calendar day, so they can be compared
// with ==.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// DateOf truncates t to its calendar day as observed in loc
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return NewDate(t.In(loc).Date())
}

// ParseDate parses a YYYY-MM-DD string. A full RFC 3339 timestamp is also
// accepted and truncated to its date part as written.
func ParseDate(str string) (Date, error) {
	t, err := time.Parse(readDateFormat, str)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, str)
		if tsErr != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, str)
		}
		t = ts
	}
	return NewDate(t.Date()), nil
}

func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date
func (d Date) Year() int { return d.y }

// Month returns the month of the date
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// IsZero returns true if the date is the zero value
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// AddDays returns the date i days later (earlier when i is negative)
func (d Date) AddDays(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Before reports whether d is before x
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is after x
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Midnight returns the first instant of the date in loc
func (d Date) Midnight(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, loc)
}

// Format formats the date with a time.Format layout
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// String formats the date as YYYY-MM-DD
func (d Date) String() string { return d.time().Format(DateFormat) }

// UnmarshalJSON reads a date from a JSON string
func (d *Date) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON writes the date as a YYYY-MM-DD JSON string
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
