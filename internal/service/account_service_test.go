package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-storefront/internal/auth"
	"github.com/spec-kit/ticket-storefront/internal/session"
	"github.com/spec-kit/ticket-storefront/internal/upstream"
	apperrors "github.com/spec-kit/ticket-storefront/pkg/util"
)

type fakeAuthClient struct {
	token      string
	loginErr   error
	registered []upstream.RegisterInput
}

func (f *fakeAuthClient) Login(_ context.Context, _, _ string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuthClient) Register(_ context.Context, input upstream.RegisterInput) error {
	f.registered = append(f.registered, input)
	return nil
}

func newAccountFixture(client *fakeAuthClient) (*AccountService, session.Store, *auth.TokenManager) {
	store := session.NewMemoryStore()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := NewAccountService(AccountDependencies{Client: client, Store: store, Tokens: tokens})
	return svc, store, tokens
}

func TestLoginPersistsTokenAndIssuesSession(t *testing.T) {
	ctx := context.Background()
	svc, store, tokens := newAccountFixture(&fakeAuthClient{token: "access-token"})

	result, err := svc.Login(ctx, "asha@example.com", "secret", false)

	require.NoError(t, err)
	require.NotEmpty(t, result.SessionToken)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	claims, err := tokens.ParseToken(result.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", claims.Email)

	sess, err := store.Get(ctx, claims.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "access-token", sess.Token)
	assert.Empty(t, sess.RememberedEmail)
}

func TestLoginRememberPersistsEmail(t *testing.T) {
	ctx := context.Background()
	svc, store, tokens := newAccountFixture(&fakeAuthClient{token: "access-token"})

	result, err := svc.Login(ctx, "asha@example.com", "secret", true)
	require.NoError(t, err)

	claims, err := tokens.ParseToken(result.SessionToken)
	require.NoError(t, err)

	sess, err := store.Get(ctx, claims.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", sess.RememberedEmail)
}

func TestLoginUpstreamRejection(t *testing.T) {
	svc, _, _ := newAccountFixture(&fakeAuthClient{
		loginErr: apperrors.NewUnauthenticated("Invalid credentials."),
	})

	_, err := svc.Login(context.Background(), "asha@example.com", "wrong", false)

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	svc, store, tokens := newAccountFixture(&fakeAuthClient{token: "access-token"})

	result, err := svc.Login(ctx, "asha@example.com", "secret", false)
	require.NoError(t, err)
	claims, err := tokens.ParseToken(result.SessionToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.SessionID))

	sess, err := store.Get(ctx, claims.SessionID)
	require.NoError(t, err)
	assert.False(t, sess.Authenticated())
}

func TestRegisterForwardsInput(t *testing.T) {
	client := &fakeAuthClient{}
	svc, _, _ := newAccountFixture(client)

	input := upstream.RegisterInput{
		Email:       "asha@example.com",
		FirstName:   "Asha",
		LastName:    "Odhiambo",
		DateOfBirth: "1995-04-12",
		Gender:      "F",
		Password:    "secret",
	}
	require.NoError(t, svc.Register(context.Background(), input))

	require.Len(t, client.registered, 1)
	assert.Equal(t, input, client.registered[0])
}
