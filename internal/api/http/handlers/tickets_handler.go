package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-storefront/internal/api/dto"
	"github.com/spec-kit/ticket-storefront/internal/auth"
	"github.com/spec-kit/ticket-storefront/internal/domain"
	"github.com/spec-kit/ticket-storefront/internal/service"
	apperrors "github.com/spec-kit/ticket-storefront/pkg/util"
)

// TicketsHandler serves the guarded browse listing.
type TicketsHandler struct {
	storefront *service.StorefrontService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(storefront *service.StorefrontService) *TicketsHandler {
	return &TicketsHandler{storefront: storefront}
}

// ListTickets GET /tickets?from=&to=. Every request reloads the inventory,
// applies the eligibility cutoff at load time and filters by route.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("session required")
	}

	criteria := domain.SearchCriteria{
		From: c.Query("from"),
		To:   c.Query("to"),
	}
	tickets, err := h.storefront.BrowseTickets(c.Context(), principal.SessionID, criteria)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromTickets(tickets)})
}

// SearchTickets GET /tickets/search?from=&to=. Refilters the current
// snapshot without refetching.
func (h *TicketsHandler) SearchTickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("session required")
	}

	criteria := domain.SearchCriteria{
		From: c.Query("from"),
		To:   c.Query("to"),
	}
	tickets := h.storefront.SearchTickets(principal.SessionID, criteria)
	return c.JSON(fiber.Map{"data": dto.FromTickets(tickets)})
}
