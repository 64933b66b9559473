package domain

import "strings"

// BookingRequest carries the passenger details entered for one ticket. A
// request exists only while a booking session is open; it is discarded on
// success or cancellation.
type BookingRequest struct {
	TicketID int64
	Name     string
	Phone    string
	Email    string
}

// MissingFields lists the required passenger fields that are empty after
// trimming whitespace.
func (r BookingRequest) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	return missing
}

// Booking is a confirmed reservation returned by the upstream my-bookings
// listing. The upstream embeds the full ticket record.
type Booking struct {
	ID     int64  `json:"id"`
	Ticket Ticket `json:"ticket"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
}

// Outcome is the transient result of one submission attempt. It is always
// superseded by the next attempt and never persisted.
type Outcome struct {
	Success bool
	Message string
}
