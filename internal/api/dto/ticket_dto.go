package dto

import "github.com/spec-kit/ticket-storefront/internal/domain"

// TicketResponse is one listed ticket.
type TicketResponse struct {
	ID              int64  `json:"id"`
	Departure       string `json:"departure"`
	Destination     string `json:"destination"`
	DateOfDeparture string `json:"date_of_departure"`
}

// FromTicket maps a domain ticket onto the response shape.
func FromTicket(t domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:              t.ID,
		Departure:       t.Departure,
		Destination:     t.Destination,
		DateOfDeparture: t.DateOfDeparture.String(),
	}
}

// FromTickets maps a listing, preserving order.
func FromTickets(tickets []domain.Ticket) []TicketResponse {
	items := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, FromTicket(t))
	}
	return items
}
