package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-storefront/internal/domain"
	apperrors "github.com/spec-kit/ticket-storefront/pkg/util"
)

func TestCurrentTokenAbsent(t *testing.T) {
	guard := NewGuard(NewMemoryStore())

	_, err := guard.CurrentToken(context.Background(), "visitor-1")

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))
}

func TestCurrentTokenPresent(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "visitor-1", domain.Session{Token: "access-token"}))
	guard := NewGuard(store)

	token, err := guard.CurrentToken(context.Background(), "visitor-1")

	require.NoError(t, err)
	assert.Equal(t, "access-token", token)
}

func TestCurrentTokenAfterClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "visitor-1", domain.Session{Token: "access-token"}))
	require.NoError(t, store.Clear(ctx, "visitor-1"))
	guard := NewGuard(store)

	_, err := guard.CurrentToken(ctx, "visitor-1")

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))
}

func TestRememberedEmail(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "visitor-1", domain.Session{
		Token:           "access-token",
		RememberedEmail: "asha@example.com",
	}))
	guard := NewGuard(store)

	email, err := guard.RememberedEmail(ctx, "visitor-1")

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", email)
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "visitor-1", domain.Session{Token: "a"}))
	guard := NewGuard(store)

	_, err := guard.CurrentToken(ctx, "visitor-2")
	assert.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))
}
