package calendar

import (
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

var ErrInvalidDate = errors.New("invalid calendar date")

// Date is a civil date without time of day. The zero value is not a valid date.
type Date struct {
	d civil.Date
}

func New(year int, month time.Month, day int) Date {
	return Date{d: civil.DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))}
}

// FromTime keeps the calendar day of t as seen in t's own location.
func FromTime(t time.Time) Date {
	return Date{d: civil.DateOf(t)}
}

// Parse accepts ISO dates and RFC3339 timestamps.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if d, err := civil.ParseDate(s); err == nil {
		return Date{d: d}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FromTime(t), nil
	}
	return Date{}, ErrInvalidDate
}

func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool { return d.d == civil.Date{} }

func (d Date) AddDays(n int) Date {
	return Date{d: d.d.AddDays(n)}
}

func (d Date) Before(other Date) bool { return d.d.Before(other.d) }
func (d Date) After(other Date) bool  { return d.d.After(other.d) }
func (d Date) Equal(other Date) bool  { return d.d == other.d }

// Between reports whether d lies in [from, to], both bounds inclusive.
func (d Date) Between(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.d.String()
}

// DaysBetween returns the signed number of days from a to b.
func DaysBetween(a, b Date) int {
	return b.d.DaysSince(a.d)
}

// Nights is the absolute day distance between two dates.
func Nights(arrival, departure Date) int {
	n := DaysBetween(arrival, departure)
	if n < 0 {
		return -n
	}
	return n
}

func Max(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}

func Min(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
