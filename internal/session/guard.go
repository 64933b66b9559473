package session

import (
	"context"

	apperrors "github.com/spec-kit/ticket-storefront/pkg/util"
)

// Guard gates every operation that needs the upstream access token. It only
// reads session state; login and logout are the sole writers.
type Guard struct {
	store Store
}

// NewGuard builds a guard over the given store.
func NewGuard(store Store) *Guard {
	return &Guard{store: store}
}

// CurrentToken returns the access token for the session. When no token is
// stored it returns an UNAUTHENTICATED error and the caller must not attempt
// the network call.
func (g *Guard) CurrentToken(ctx context.Context, sessionID string) (string, error) {
	sess, err := g.store.Get(ctx, sessionID)
	if err != nil {
		return "", apperrors.MapError(err)
	}
	if !sess.Authenticated() {
		return "", apperrors.NewUnauthenticated("not signed in")
	}
	return sess.Token, nil
}

// RememberedEmail returns the remembered email for the session, if any.
func (g *Guard) RememberedEmail(ctx context.Context, sessionID string) (string, error) {
	sess, err := g.store.Get(ctx, sessionID)
	if err != nil {
		return "", apperrors.MapError(err)
	}
	return sess.RememberedEmail, nil
}
