package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-storefront/internal/api/http/handlers"
	"github.com/spec-kit/ticket-storefront/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Bookings       *handlers.BookingsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Get("/search", cfg.Tickets.SearchTickets)

	bookings := app.Group("/bookings", cfg.AuthMiddleware.Handle)
	bookings.Get("/", cfg.Bookings.ListBookings)
	bookings.Get("/session", cfg.Bookings.GetBooking)
	bookings.Post("/select", cfg.Bookings.SelectTicket)
	bookings.Post("/cancel", cfg.Bookings.CancelBooking)
	bookings.Post("/submit", cfg.Bookings.SubmitBooking)
}
