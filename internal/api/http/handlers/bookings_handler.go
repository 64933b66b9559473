package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-storefront/internal/api/dto"
	"github.com/spec-kit/ticket-storefront/internal/auth"
	"github.com/spec-kit/ticket-storefront/internal/service"
	apperrors "github.com/spec-kit/ticket-storefront/pkg/util"
)

// BookingsHandler drives the booking session and the my-bookings listing.
type BookingsHandler struct {
	storefront *service.StorefrontService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(storefront *service.StorefrontService) *BookingsHandler {
	return &BookingsHandler{storefront: storefront}
}

// ListBookings GET /bookings. Lists the visitor's confirmed bookings.
func (h *BookingsHandler) ListBookings(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("session required")
	}
	bookings, err := h.storefront.MyBookings(c.Context(), principal.SessionID, principal.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromBookings(bookings)})
}

// GetBooking GET /bookings/session. Reports the open booking session.
func (h *BookingsHandler) GetBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("session required")
	}
	state := h.storefront.CurrentBooking(principal.SessionID)
	return c.JSON(fiber.Map{"data": dto.FromBookingState(state)})
}

// SelectTicket POST /bookings/select. Opens the form for one ticket,
// replacing any open selection.
func (h *BookingsHandler) SelectTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("session required")
	}

	var req dto.SelectTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.TicketID <= 0 {
		return apperrors.NewValidationError("ticket_id required", nil)
	}

	if err := h.storefront.SelectTicket(principal.SessionID, req.TicketID); err != nil {
		return err
	}
	state := h.storefront.CurrentBooking(principal.SessionID)
	return c.JSON(fiber.Map{"data": dto.FromBookingState(state)})
}

// CancelBooking POST /bookings/cancel. Discards the open selection.
func (h *BookingsHandler) CancelBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("session required")
	}
	if err := h.storefront.CancelBooking(principal.SessionID); err != nil {
		return err
	}
	state := h.storefront.CurrentBooking(principal.SessionID)
	return c.JSON(fiber.Map{"data": dto.FromBookingState(state)})
}

// SubmitBooking POST /bookings/submit. Submits the open booking.
func (h *BookingsHandler) SubmitBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("session required")
	}

	var req dto.SubmitBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	outcome, err := h.storefront.SubmitBooking(c.Context(), principal.SessionID, req.Name, req.Phone, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.OutcomeResponse{Success: outcome.Success, Message: outcome.Message}})
}
