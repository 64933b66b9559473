package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ticket-storefront/internal/booking"
	"github.com/spec-kit/ticket-storefront/internal/domain"
	"github.com/spec-kit/ticket-storefront/internal/events"
	"github.com/spec-kit/ticket-storefront/internal/inventory"
	"github.com/spec-kit/ticket-storefront/internal/observability"
	"github.com/spec-kit/ticket-storefront/internal/session"
	apperrors "github.com/spec-kit/ticket-storefront/pkg/util"
)

// StorefrontClient is the slice of the upstream API the storefront uses.
type StorefrontClient interface {
	ListTickets(ctx context.Context, token string) ([]domain.Ticket, error)
	ListBookings(ctx context.Context, token, email string) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, token string, req domain.BookingRequest) error
}

// StorefrontService coordinates the guarded browse and booking workflows.
// Each visitor session owns its inventory view and its booking session;
// nothing is shared across sessions.
type StorefrontService struct {
	guard      *session.Guard
	client     StorefrontClient
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	clock      func() time.Time

	mu       sync.Mutex
	views    map[string]*inventory.View
	bookings map[string]*booking.Session
}

// StorefrontDependencies bundles collaborators for the storefront service.
type StorefrontDependencies struct {
	Guard      *session.Guard
	Client     StorefrontClient
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Clock      func() time.Time
}

// NewStorefrontService constructs the service.
func NewStorefrontService(deps StorefrontDependencies) *StorefrontService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &StorefrontService{
		guard:      deps.Guard,
		client:     deps.Client,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		clock:      clock,
		views:      make(map[string]*inventory.View),
		bookings:   make(map[string]*booking.Session),
	}
}

// BrowseTickets reloads the session's inventory and returns the tickets that
// are still eligible at load time and match the search criteria. The guard
// runs first; without a token the upstream is never contacted. Overlapping
// loads resolve last-dispatched-wins: a stale snapshot is discarded and the
// fresher one is filtered instead.
func (s *StorefrontService) BrowseTickets(ctx context.Context, sessionID string, criteria domain.SearchCriteria) ([]domain.Ticket, error) {
	token, err := s.guard.CurrentToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := s.viewFor(sessionID)
	gen := view.Begin()

	tickets, err := s.client.ListTickets(ctx, token)
	if err != nil {
		return nil, err
	}

	asOf := s.clock()
	eligible := inventory.Eligible(tickets, asOf)
	applied := view.Complete(gen, eligible, asOf)
	s.metrics.RecordInventoryLoad(!applied)
	s.publish(ctx, events.Event{
		Type:      events.EventInventoryLoaded,
		SessionID: sessionID,
		Payload: events.InventoryLoadedPayload{
			TicketCount:  len(tickets),
			EligibleCnt:  len(eligible),
			StaleDiscard: !applied,
		},
	})

	snapshot, _ := view.Snapshot()
	return inventory.Matching(snapshot, criteria), nil
}

// SearchTickets recomputes the filtered listing from the session's current
// eligible snapshot without refetching. The result is always derived; the
// snapshot stays the single source of truth.
func (s *StorefrontService) SearchTickets(sessionID string, criteria domain.SearchCriteria) []domain.Ticket {
	snapshot, _ := s.viewFor(sessionID).Snapshot()
	return inventory.Matching(snapshot, criteria)
}

// MyBookings lists the visitor's confirmed bookings by email. When the
// caller supplies no email the remembered one from the session is used.
func (s *StorefrontService) MyBookings(ctx context.Context, sessionID, email string) ([]domain.Booking, error) {
	token, err := s.guard.CurrentToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if email == "" {
		email, err = s.guard.RememberedEmail(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if email == "" {
			return nil, apperrors.NewValidationError("no email on session", nil)
		}
	}
	return s.client.ListBookings(ctx, token, email)
}

// SelectTicket opens the booking form for the given ticket, replacing any
// open selection.
func (s *StorefrontService) SelectTicket(sessionID string, ticketID int64) error {
	return s.bookingFor(sessionID).Select(ticketID)
}

// CancelBooking discards the open selection.
func (s *StorefrontService) CancelBooking(sessionID string) error {
	return s.bookingFor(sessionID).Cancel()
}

// SubmitBooking submits the open booking with the entered passenger fields
// and reports the outcome.
func (s *StorefrontService) SubmitBooking(ctx context.Context, sessionID, name, phone, email string) (domain.Outcome, error) {
	sess := s.bookingFor(sessionID)
	ticketID, _ := sess.SelectedTicket()

	outcome, err := sess.Submit(ctx, name, phone, email)
	if err != nil {
		code := apperrors.ToDomainError(err).Code
		switch code {
		case "BOOKING_VALIDATION", "UNAUTHENTICATED":
			// Never reached the network.
			s.metrics.RecordBooking("validation")
		default:
			s.metrics.RecordBooking("failed")
			s.publish(ctx, events.Event{
				Type:      events.EventBookingFailed,
				SessionID: sessionID,
				Payload: events.BookingFailedPayload{
					TicketID: ticketID,
					Code:     code,
					Reason:   outcome.Message,
				},
			})
		}
		return outcome, err
	}

	s.metrics.RecordBooking("succeeded")
	s.publish(ctx, events.Event{
		Type:      events.EventBookingSucceeded,
		SessionID: sessionID,
		Payload: events.BookingSucceededPayload{
			TicketID: ticketID,
			Message:  outcome.Message,
		},
	})
	return outcome, nil
}

// BookingState describes the visitor's booking session for the API surface.
type BookingState struct {
	State    string
	TicketID int64
	Request  domain.BookingRequest
	Outcome  *domain.Outcome
}

// CurrentBooking reports the state of the visitor's booking session.
func (s *StorefrontService) CurrentBooking(sessionID string) BookingState {
	sess := s.bookingFor(sessionID)
	state := BookingState{
		State:   sess.State().String(),
		Request: sess.PendingRequest(),
	}
	if id, ok := sess.SelectedTicket(); ok {
		state.TicketID = id
	}
	if outcome, ok := sess.Outcome(); ok {
		state.Outcome = &outcome
	}
	return state
}

// DropSession releases the per-session inventory view and booking session,
// typically on logout.
func (s *StorefrontService) DropSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, sessionID)
	delete(s.bookings, sessionID)
}

func (s *StorefrontService) viewFor(sessionID string) *inventory.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, ok := s.views[sessionID]
	if !ok {
		view = inventory.NewView()
		s.views[sessionID] = view
	}
	return view
}

func (s *StorefrontService) bookingFor(sessionID string) *booking.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.bookings[sessionID]
	if !ok {
		tokens := func(ctx context.Context) (string, error) {
			return s.guard.CurrentToken(ctx, sessionID)
		}
		sess = booking.NewSession(tokens, s.client)
		s.bookings[sessionID] = sess
	}
	return sess
}

func (s *StorefrontService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
