package inventory

import (
	"strings"
	"time"

	"github.com/spec-kit/ticket-storefront/internal/domain"
)

// Eligible returns the tickets whose departure date falls on or after the
// calendar day of asOf. A ticket departing today is still eligible. The
// filter is stable: input order is preserved and the input is never mutated.
func Eligible(tickets []domain.Ticket, asOf time.Time) []domain.Ticket {
	eligible := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if ticket.DateOfDeparture.OnOrAfter(asOf) {
			eligible = append(eligible, ticket)
		}
	}
	return eligible
}

// Matching returns the tickets whose departure contains criteria.From and
// whose destination contains criteria.To, both as case-insensitive
// substrings. An empty pattern matches every ticket, so zero criteria return
// the input unchanged in content and order.
func Matching(tickets []domain.Ticket, criteria domain.SearchCriteria) []domain.Ticket {
	from := strings.ToLower(criteria.From)
	to := strings.ToLower(criteria.To)

	matched := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if strings.Contains(strings.ToLower(ticket.Departure), from) &&
			strings.Contains(strings.ToLower(ticket.Destination), to) {
			matched = append(matched, ticket)
		}
	}
	return matched
}
