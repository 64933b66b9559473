package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-storefront/internal/api/dto"
	"github.com/spec-kit/ticket-storefront/internal/auth"
	"github.com/spec-kit/ticket-storefront/internal/service"
	"github.com/spec-kit/ticket-storefront/internal/upstream"
	apperrors "github.com/spec-kit/ticket-storefront/pkg/util"
)

// AuthHandler exposes login, registration and logout.
type AuthHandler struct {
	accounts   *service.AccountService
	storefront *service.StorefrontService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(accounts *service.AccountService, storefront *service.StorefrontService) *AuthHandler {
	return &AuthHandler{accounts: accounts, storefront: storefront}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	result, err := h.accounts.Login(c.Context(), req.Email, req.Password, req.Remember)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.AuthResponse{Token: result.SessionToken, ExpiresAt: result.ExpiresAt},
	})
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	input := upstream.RegisterInput{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Password:    req.Password,
	}
	if err := h.accounts.Register(c.Context(), input); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"registered": true}})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("session required")
	}
	if err := h.accounts.Logout(c.Context(), principal.SessionID); err != nil {
		return err
	}
	h.storefront.DropSession(principal.SessionID)
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}
