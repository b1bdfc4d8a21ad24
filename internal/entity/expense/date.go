package expense

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the only accepted textual form of a Date.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// Date is a calendar day without time of day or zone. It is comparable and
// usable as a map key.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate normalizes out-of-range values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "parse %q", s)
	}
	return DateOf(t), nil
}

func (d Date) Year() int             { return d.year }
func (d Date) Month() time.Month     { return d.month }
func (d Date) Day() int              { return d.day }
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }
func (d Date) IsZero() bool          { return d == Date{} }

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) MonthKey() MonthKey {
	return MonthKey{Year: d.Year(), Month: d.Month()}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d == o }

// Compare returns -1, 0 or +1. Chronological order matches the order of the
// zero-padded text form.
func (d Date) Compare(o Date) int {
	a := [3]int{d.year, int(d.month), d.day}
	b := [3]int{o.year, int(o.month), o.day}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as text so that both postgres DATE and sqlite TEXT
// columns accept it.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	case nil:
		return errors.Wrap(ErrInvalidDate, "scan NULL date")
	}
	return fmt.Errorf("cannot scan %T into expense.Date", src)
}

func (d *Date) scanText(s string) error {
	if len(s) > len(DateLayout) {
		// drivers may hand back a full timestamp for DATE columns
		s = s[:len(DateLayout)]
	}
	return d.UnmarshalText([]byte(s))
}

// MonthKey identifies a calendar month. Ordering is chronological.
type MonthKey struct {
	Year  int
	Month time.Month
}

func (k MonthKey) Less(o MonthKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.Month < o.Month
}

func (k MonthKey) FirstDay() Date {
	return NewDate(k.Year, k.Month, 1)
}

// String renders the key as YYYY-MM.
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// MonthNumber renders just the month as "01".."12".
func (k MonthKey) MonthNumber() string {
	return fmt.Sprintf("%02d", int(k.Month))
}

func (k MonthKey) YearString() string {
	return strconv.Itoa(k.Year)
}
