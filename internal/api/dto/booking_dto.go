package dto

import (
	"github.com/spec-kit/ticket-storefront/internal/domain"
	"github.com/spec-kit/ticket-storefront/internal/service"
)

// SelectTicketRequest opens the booking form for a ticket.
type SelectTicketRequest struct {
	TicketID int64 `json:"ticket_id"`
}

// SubmitBookingRequest carries the passenger fields.
type SubmitBookingRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// OutcomeResponse reports a submission result.
type OutcomeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BookingStateResponse describes the open booking session.
type BookingStateResponse struct {
	State    string           `json:"state"`
	TicketID int64            `json:"ticket_id,omitempty"`
	Name     string           `json:"name"`
	Phone    string           `json:"phone"`
	Email    string           `json:"email"`
	Outcome  *OutcomeResponse `json:"outcome,omitempty"`
}

// FromBookingState maps the service view of a booking session.
func FromBookingState(state service.BookingState) BookingStateResponse {
	resp := BookingStateResponse{
		State:    state.State,
		TicketID: state.TicketID,
		Name:     state.Request.Name,
		Phone:    state.Request.Phone,
		Email:    state.Request.Email,
	}
	if state.Outcome != nil {
		resp.Outcome = &OutcomeResponse{Success: state.Outcome.Success, Message: state.Outcome.Message}
	}
	return resp
}

// BookingResponse is one confirmed booking from the my-bookings listing.
type BookingResponse struct {
	ID     int64          `json:"id"`
	Ticket TicketResponse `json:"ticket"`
	Name   string         `json:"name"`
	Phone  string         `json:"phone"`
	Email  string         `json:"email"`
}

// FromBookings maps the listing, preserving order.
func FromBookings(bookings []domain.Booking) []BookingResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, BookingResponse{
			ID:     b.ID,
			Ticket: FromTicket(b.Ticket),
			Name:   b.Name,
			Phone:  b.Phone,
			Email:  b.Email,
		})
	}
	return items
}
