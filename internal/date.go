package internal

import (
	"fmt"
	"strings"
	"time"
)

type Date struct{ time.Time }

const dateLayout = "2006-01-02"

// DefaultWindowDays is the length of the trailing historical window.
const DefaultWindowDays = 30

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return NewDate(t), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// UnmarshalText lets a Date be decoded straight from a JSON object key.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// RequestWindow is the calendar range [Start, End] sent to the historical
// endpoint.
type RequestWindow struct {
	Start Date
	End   Date
}

// NewRequestWindow returns the window ending on the calendar day of now
// (in now's location) and starting days earlier.
func NewRequestWindow(now time.Time, days int) RequestWindow {
	if days <= 0 {
		days = DefaultWindowDays
	}
	end := NewDate(now)
	return RequestWindow{
		Start: Date{Time: end.AddDate(0, 0, -days)},
		End:   end,
	}
}

func (w RequestWindow) Days() int {
	return int(w.End.Sub(w.Start.Time).Hours() / 24)
}
