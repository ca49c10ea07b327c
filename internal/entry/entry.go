// Package entry defines the work-log entry model and the resolution of
// canonical timing from partial input.
package entry

import (
	"fmt"
	"strconv"
	"time"
)

// Entry represents a single work-log record
type Entry struct {
	ID          string    `json:"id"`
	Person      string    `json:"person"`
	Date        Date      `json:"date"`
	Start       *Clock    `json:"start,omitempty"`
	End         *Clock    `json:"end,omitempty"`
	Duration    Minutes   `json:"duration"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidationError reports malformed or insufficient input. Field names the
// offending input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Date is a calendar date without a time component. The zero value is
// treated as "not set".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in its location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("expected YYYY-MM-DD, got %q", s)}
	}
	return DateOf(t), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight of the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// ISOWeek returns the ISO 8601 year and week number of the date.
func (d Date) ISOWeek() (year, week int) {
	return d.Time(time.UTC).ISOWeek()
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON serializes the date as an ISO-8601 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON parses an ISO-8601 date string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Clock is a time of day stored as minutes since midnight.
type Clock int

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// NewClock returns the clock value for the given hour and minute.
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock parses a time of day in HH:MM format.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, &ValidationError{Field: "time", Reason: fmt.Sprintf("expected HH:MM, got %q", s)}
	}
	return NewClock(t.Hour(), t.Minute()), nil
}

// Hour returns the hour component (0-23).
func (c Clock) Hour() int { return int(c) / 60 }

// Minute returns the minute component (0-59).
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// MarshalJSON serializes the clock as an HH:MM string.
func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

// UnmarshalJSON parses an HH:MM clock string.
func (c *Clock) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("time of day must be a string: %w", err)
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ClockPtr returns a pointer to c. Convenience for optional fields.
func ClockPtr(c Clock) *Clock { return &c }

// Minutes is a duration in whole minutes. It serializes as the human
// string "{H}h {M}m" used by the persisted record layout.
type Minutes int

// ParseMinutes parses the persisted "{H}h {M}m" duration string.
func ParseMinutes(s string) (Minutes, error) {
	var hours, mins int
	if _, err := fmt.Sscanf(s, "%dh %dm", &hours, &mins); err != nil {
		return 0, &ValidationError{Field: "duration", Reason: fmt.Sprintf("expected {H}h {M}m, got %q", s)}
	}
	if hours < 0 || mins < 0 || mins > 59 {
		return 0, &ValidationError{Field: "duration", Reason: fmt.Sprintf("expected {H}h {M}m, got %q", s)}
	}
	return Minutes(hours*60 + mins), nil
}

func (m Minutes) String() string {
	return fmt.Sprintf("%dh %dm", int(m)/60, int(m)%60)
}

// MarshalJSON serializes the duration as the "{H}h {M}m" string.
func (m Minutes) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}

// UnmarshalJSON parses the "{H}h {M}m" duration string.
func (m *Minutes) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := ParseMinutes(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
