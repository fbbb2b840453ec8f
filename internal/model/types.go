package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hvacdr/service-api/pkg/errors"
)

const (
	// DateLayout is the only accepted wire format for calendar dates.
	DateLayout = "2006-01-02"
	// TimeOfDayLayout is the accepted wire format for times of day.
	TimeOfDayLayout = "15:04"

	timeOfDayOutLayout = "15:04:05"
)

func init() {
	// Currency columns serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Date is a calendar date with no time component. The invalid zero value
// marshals as JSON null and stores as SQL NULL.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate truncates t to its calendar date.
func NewDate(t time.Time) Date {
	return Date{
		Time:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}

// Today returns the current UTC calendar date.
func Today() Date {
	return NewDate(time.Now().UTC())
}

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errors.Parse(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s), err)
	}
	return Date{Time: t, Valid: true}, nil
}

func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.Parse(fmt.Sprintf("invalid date %s, expected YYYY-MM-DD", s), nil)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = NewDate(v)
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time, nil
}

// TimeOfDay is a wall-clock time with no date component. Accepts HH:MM on
// input and serializes as HH:MM:SS; the invalid zero value is null.
type TimeOfDay struct {
	Time  time.Time
	Valid bool
}

// ParseTimeOfDay parses a strict 24-hour HH:MM string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, errors.Parse(fmt.Sprintf("invalid time %q, expected HH:MM", s), err)
	}
	return TimeOfDay{Time: t, Valid: true}, nil
}

func (t TimeOfDay) String() string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(timeOfDayOutLayout)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Time.Format(timeOfDayOutLayout) + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*t = TimeOfDay{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.Parse(fmt.Sprintf("invalid time %s, expected HH:MM", s), nil)
	}
	parsed, err := ParseTimeOfDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeOfDay{}
	case time.Time:
		*t = TimeOfDay{Time: v, Valid: true}
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
	return nil
}

func (t *TimeOfDay) scanString(s string) error {
	parsed, err := time.Parse(timeOfDayOutLayout, s)
	if err != nil {
		parsed, err = time.Parse(TimeOfDayLayout, s)
		if err != nil {
			return fmt.Errorf("cannot scan %q into TimeOfDay", s)
		}
	}
	*t = TimeOfDay{Time: parsed, Valid: true}
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time.Format(timeOfDayOutLayout), nil
}
