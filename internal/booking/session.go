package booking

import (
	"context"
	"sync"

	"github.com/spec-kit/ticket-storefront/internal/domain"
	apperrors "github.com/spec-kit/ticket-storefront/pkg/util"
)

// State enumerates the booking session lifecycle.
type State int

const (
	// StateIdle means no ticket is selected.
	StateIdle State = iota
	// StateSelecting means the booking form is open for one ticket.
	StateSelecting
	// StateSubmitting means a submission is in flight; no second submission
	// may start and the session cannot be cancelled.
	StateSubmitting
	// StateResolved means the last submission finished, successfully or not.
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateSubmitting:
		return "submitting"
	case StateResolved:
		return "resolved"
	}
	return "unknown"
}

// Submitter performs the network side of a submission.
type Submitter interface {
	CreateBooking(ctx context.Context, token string, req domain.BookingRequest) error
}

// TokenFunc yields the caller's access token or an UNAUTHENTICATED error.
type TokenFunc func(ctx context.Context) (string, error)

const successMessage = "Ticket booked successfully!"

// Session drives one visitor's booking attempt from selection through
// resolution. At most one ticket is selectable at a time and at most one
// submission may be in flight. All methods are safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	state   State
	request domain.BookingRequest
	outcome *domain.Outcome

	tokens    TokenFunc
	submitter Submitter
}

// NewSession builds an idle session.
func NewSession(tokens TokenFunc, submitter Submitter) *Session {
	return &Session{state: StateIdle, tokens: tokens, submitter: submitter}
}

// Select opens the booking form for the given ticket. Selecting while a form
// is already open replaces the selection and discards any entered fields;
// only one booking is editable at a time. Selection is rejected while a
// submission is in flight.
func (s *Session) Select(ticketID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting {
		return apperrors.NewBookingValidation("a booking is already being submitted", nil)
	}
	s.state = StateSelecting
	s.request = domain.BookingRequest{TicketID: ticketID}
	s.outcome = nil
	return nil
}

// Cancel discards the open selection and any entered fields. It has no
// network effect and is a no-op when the session is already idle. A
// submission in flight cannot be cancelled.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting {
		return apperrors.NewBookingValidation("cannot cancel while a booking is being submitted", nil)
	}
	s.state = StateIdle
	s.request = domain.BookingRequest{}
	s.outcome = nil
	return nil
}

// Submit validates the entered fields and, when valid and a token is
// present, dispatches the booking. Local validation failures and a missing
// token never reach the network and leave the form open with the entered
// values. A failed submission resolves with the fields intact so the caller
// can retry; a successful one clears the selection and the form.
func (s *Session) Submit(ctx context.Context, name, phone, email string) (domain.Outcome, error) {
	s.mu.Lock()
	switch s.state {
	case StateSubmitting:
		s.mu.Unlock()
		return domain.Outcome{}, apperrors.NewBookingValidation("a booking is already being submitted", nil)
	case StateIdle:
		s.mu.Unlock()
		return domain.Outcome{}, apperrors.NewBookingValidation("no ticket selected", nil)
	}
	if s.request.TicketID == 0 {
		s.mu.Unlock()
		return domain.Outcome{}, apperrors.NewBookingValidation("no ticket selected", nil)
	}

	s.request.Name, s.request.Phone, s.request.Email = name, phone, email
	req := s.request

	if missing := req.MissingFields(); len(missing) > 0 {
		s.mu.Unlock()
		return domain.Outcome{}, apperrors.NewBookingValidation("missing required fields", map[string]any{
			"fields": missing,
		})
	}

	token, err := s.tokens(ctx)
	if err != nil {
		s.mu.Unlock()
		return domain.Outcome{}, err
	}

	s.state = StateSubmitting
	s.mu.Unlock()

	submitErr := s.submitter.CreateBooking(ctx, token, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateResolved
	if submitErr != nil {
		// Entered fields and the selection survive so the caller may
		// re-invoke Submit without re-typing.
		outcome := domain.Outcome{Success: false, Message: apperrors.ToDomainError(submitErr).Message}
		s.outcome = &outcome
		return outcome, submitErr
	}

	outcome := domain.Outcome{Success: true, Message: successMessage}
	s.outcome = &outcome
	s.request = domain.BookingRequest{}
	return outcome, nil
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SelectedTicket reports the ticket the form is open for, if any.
func (s *Session) SelectedTicket() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.request.TicketID == 0 {
		return 0, false
	}
	return s.request.TicketID, true
}

// PendingRequest returns a copy of the request under edit, including any
// fields preserved from a failed submission.
func (s *Session) PendingRequest() domain.BookingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.request
}

// Outcome returns the result of the last resolved submission, if any.
func (s *Session) Outcome() (domain.Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outcome == nil {
		return domain.Outcome{}, false
	}
	return *s.outcome, true
}
