// Package date provides a day-granularity Date type used for every date
// field exchanged with the backend (declarations, birth dates, execution
// dates, IRR dates).
package date

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// MonthFormat is the format of a partial, month-only date.
const MonthFormat = "2006-01"

// Date represents a date with day-level granularity. The zero value is the
// "no date" value and is encoded as JSON null.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time { return d.time() }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// IsZero reports whether d is the "no date" value.
func (d Date) IsZero() bool { return d == Date{} }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddYears returns a new Date with the given number of years added.
func (d Date) AddYears(i int) Date { return New(d.y+i, d.m, d.d) }

// EndOfMonth returns the last calendar day of d's month.
func (d Date) EndOfMonth() Date { return New(d.y, d.m+1, 0) }

// UnixMilli returns the number of milliseconds since the epoch at midnight UTC.
func (d Date) UnixMilli() int64 { return d.time().UnixMilli() }

// String format the date in its standard format.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DateFormat)
}

// Format formats the date using a time layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Parse parses a Date from a string. It is lenient and accepts formats like
// "2025-7-1" as well as full RFC 3339 timestamps as served for created_at
// fields.
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		if ts, tsErr := time.Parse(time.RFC3339, str); tsErr == nil {
			return New(ts.Date()), nil
		}
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

var monthOnly = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ParseMonth parses a "YYYY-MM" string and returns the first day of that month.
func ParseMonth(str string) (Date, error) {
	if !monthOnly.MatchString(str) {
		return Date{}, fmt.Errorf("invalid month %q want format %q", str, MonthFormat)
	}
	on, err := time.Parse(MonthFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return New(on.Year(), on.Month(), 1), nil
}

// YearsSince returns the number of whole years elapsed between d and on.
func (d Date) YearsSince(on Date) int {
	years := on.y - d.y
	if on.m < d.m || (on.m == d.m && on.d < d.d) {
		years--
	}
	return years
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
// null and "" decode into the zero Date.
func (j *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*j = Date{}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		*j = Date{}
		return nil
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	if j.IsZero() {
		return []byte("null"), nil
	}
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
