package domain

import (
	"fmt"
	"strings"
	"time"
)

// departureDateLayout matches the upstream wire encoding for departure dates.
const departureDateLayout = "2006-01-02"

// DepartureDate is a calendar date with no time component.
type DepartureDate struct {
	time.Time
}

// NewDepartureDate builds a date at UTC midnight.
func NewDepartureDate(year int, month time.Month, day int) DepartureDate {
	return DepartureDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON parses the upstream "2006-01-02" encoding.
func (d *DepartureDate) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	parsed, err := time.Parse(departureDateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid departure date %q: %w", raw, err)
	}
	d.Time = parsed
	return nil
}

// MarshalJSON encodes the date back into the upstream format.
func (d DepartureDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(departureDateLayout) + `"`), nil
}

// String renders the wire format.
func (d DepartureDate) String() string {
	return d.Time.Format(departureDateLayout)
}

// OnOrAfter reports whether the date falls on or after the calendar day of
// ref. The time-of-day of ref is ignored, so a ticket departing today is
// still on or after "now".
func (d DepartureDate) OnOrAfter(ref time.Time) bool {
	year, month, day := ref.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return !d.Time.Before(dayStart)
}

// Ticket is a bookable trip fetched from the upstream inventory. Tickets are
// read-only on this side; the upstream service owns their lifecycle.
type Ticket struct {
	ID              int64         `json:"id"`
	Departure       string        `json:"departure"`
	Destination     string        `json:"destination"`
	DateOfDeparture DepartureDate `json:"date_of_departure"`
}

// SearchCriteria holds the free-text route filters. Empty fields match every
// ticket.
type SearchCriteria struct {
	From string
	To   string
}
