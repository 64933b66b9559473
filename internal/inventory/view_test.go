package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-storefront/internal/domain"
)

func TestViewStaleLoadDiscarded(t *testing.T) {
	view := NewView()
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

	first := view.Begin()
	second := view.Begin()

	// The later-dispatched load resolves first.
	fresh := []domain.Ticket{ticket(2, "Nairobi", "Mombasa", 2026, time.June, 1)}
	require.True(t, view.Complete(second, fresh, now))

	// The earlier load resolves afterwards and must be dropped.
	stale := []domain.Ticket{ticket(1, "Kisumu", "Nakuru", 2026, time.June, 1)}
	assert.False(t, view.Complete(first, stale, now.Add(time.Second)))

	snapshot, loadedAt := view.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, int64(2), snapshot[0].ID)
	assert.Equal(t, now, loadedAt)
}

func TestViewSequentialLoadsApply(t *testing.T) {
	view := NewView()
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

	first := view.Begin()
	require.True(t, view.Complete(first, []domain.Ticket{{ID: 1}}, now))

	second := view.Begin()
	require.True(t, view.Complete(second, []domain.Ticket{{ID: 2}}, now.Add(time.Minute)))

	snapshot, _ := view.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, int64(2), snapshot[0].ID)
}

func TestViewEmptySnapshot(t *testing.T) {
	view := NewView()
	snapshot, loadedAt := view.Snapshot()
	assert.Empty(t, snapshot)
	assert.True(t, loadedAt.IsZero())
}
