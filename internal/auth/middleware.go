package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/ticket-storefront/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated visitor.
type Principal struct {
	SessionID string
	Email     string
}

// Middleware validates bearer session tokens and loads principals.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces a valid session token for protected routes. Whether the
// session still holds an upstream access token is checked per operation by
// the session guard.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthenticated("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthenticated("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthenticated("invalid session token")
	}

	c.Locals(principalKey, &Principal{SessionID: claims.SessionID, Email: claims.Email})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated visitor.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
