package inventory

import (
	"sync"
	"time"

	"github.com/spec-kit/ticket-storefront/internal/domain"
)

// View owns one session's eligible inventory snapshot. Loads may overlap;
// each is tagged with a monotonically increasing generation so a slow load
// that resolves after a newer one is discarded instead of overwriting the
// fresher snapshot.
type View struct {
	mu         sync.Mutex
	dispatched uint64
	applied    uint64
	tickets    []domain.Ticket
	loadedAt   time.Time
}

// NewView builds an empty view.
func NewView() *View {
	return &View{}
}

// Begin registers a new load and returns its generation tag.
func (v *View) Begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dispatched++
	return v.dispatched
}

// Complete installs the snapshot for the load tagged gen. It reports false
// when a later-dispatched load already completed, in which case the snapshot
// is dropped.
func (v *View) Complete(gen uint64, tickets []domain.Ticket, loadedAt time.Time) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen <= v.applied {
		return false
	}
	v.applied = gen
	v.tickets = tickets
	v.loadedAt = loadedAt
	return true
}

// Snapshot returns the most recently applied tickets and their load time.
func (v *View) Snapshot() ([]domain.Ticket, time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tickets, v.loadedAt
}
