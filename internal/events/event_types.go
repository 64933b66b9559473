package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventInventoryLoaded  EventType = "inventory_loaded"
	EventBookingSucceeded EventType = "booking_succeeded"
	EventBookingFailed    EventType = "booking_failed"
)

// Event represents a storefront event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// InventoryLoadedPayload payload.
type InventoryLoadedPayload struct {
	TicketCount  int  `json:"ticket_count"`
	EligibleCnt  int  `json:"eligible_count"`
	StaleDiscard bool `json:"stale_discard"`
}

// BookingSucceededPayload payload.
type BookingSucceededPayload struct {
	TicketID int64  `json:"ticket_id"`
	Message  string `json:"message"`
}

// BookingFailedPayload payload.
type BookingFailedPayload struct {
	TicketID int64  `json:"ticket_id"`
	Code     string `json:"code"`
	Reason   string `json:"reason"`
}
