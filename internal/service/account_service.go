package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ticket-storefront/internal/auth"
	"github.com/spec-kit/ticket-storefront/internal/domain"
	"github.com/spec-kit/ticket-storefront/internal/session"
	"github.com/spec-kit/ticket-storefront/internal/upstream"
)

// AuthClient is the slice of the upstream API the account flows use.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, input upstream.RegisterInput) error
}

// AccountService drives login and registration against the upstream and owns
// the session store writes. It is the single writer of session state; every
// other component only reads it through the guard.
type AccountService struct {
	client AuthClient
	store  session.Store
	tokens *auth.TokenManager
}

// AccountDependencies bundles collaborators for the account service.
type AccountDependencies struct {
	Client AuthClient
	Store  session.Store
	Tokens *auth.TokenManager
}

// NewAccountService builds the service.
func NewAccountService(deps AccountDependencies) *AccountService {
	return &AccountService{
		client: deps.Client,
		store:  deps.Store,
		tokens: deps.Tokens,
	}
}

// LoginResult carries the issued storefront session back to the handler.
type LoginResult struct {
	SessionToken string
	ExpiresAt    time.Time
}

// Login authenticates against the upstream, persists the upstream access
// token under a fresh session ID and issues the storefront's own session
// token for it. When remember is set the email is persisted alongside for
// form prefill.
func (s *AccountService) Login(ctx context.Context, email, password string, remember bool) (*LoginResult, error) {
	accessToken, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := domain.Session{Token: accessToken}
	if remember {
		sess.RememberedEmail = email
	}

	sessionID := uuid.NewString()
	if err := s.store.Set(ctx, sessionID, sess); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateToken(sessionID, email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{SessionToken: token, ExpiresAt: expiresAt}, nil
}

// Register creates an upstream account. The visitor logs in afterwards.
func (s *AccountService) Register(ctx context.Context, input upstream.RegisterInput) error {
	return s.client.Register(ctx, input)
}

// Logout clears the persisted session state.
func (s *AccountService) Logout(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}
