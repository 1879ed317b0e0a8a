package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Date is a calendar day stored as YYYY-MM-DD.
type Date string

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func (d Date) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// DaysUntil counts whole days from today to d, never below zero.
func (d Date) DaysUntil(today Date) int {
	days := int(d.Time().Sub(today.Time()).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func (Date) GormDataType() string {
	return "date"
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = DateOf(v)
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	return nil
}

func (d *Date) scanString(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

// TimeOfDay is a wall clock time stored as HH:MM:SS.
type TimeOfDay string

var timeOfDayLayouts = []string{timeLayout, "15:04", "15:04:05.999999999"}

// ParseTimeOfDay accepts HH:MM, HH:MM:SS and HH:MM:SS with fractional seconds.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay(t.Format(timeLayout)), nil
		}
	}
	return "", fmt.Errorf("invalid time %q, expected HH:MM", s)
}

// Short renders the time as HH:MM.
func (t TimeOfDay) Short() string {
	if len(t) < 5 {
		return string(t)
	}
	return string(t[:5])
}

func (TimeOfDay) GormDataType() string {
	return "time"
}

// GormDBDataType keeps the column as text on SQLite, where gorm would declare
// it datetime and go-sqlite3 would read "HH:MM:SS" back as a zero time.Time.
func (TimeOfDay) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "varchar(8)"
	}
	return "time"
}

func (t *TimeOfDay) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		// Drivers that parse time columns into timestamps; a zero value
		// means the driver failed to parse the stored text.
		if v.IsZero() {
			return errors.New("cannot scan zero time.Time into TimeOfDay")
		}
		*t = TimeOfDay(v.Format(timeLayout))
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		*t = parsed
		return err
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		*t = parsed
		return err
	}
	return fmt.Errorf("cannot scan %T into TimeOfDay", value)
}

func (t TimeOfDay) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}
