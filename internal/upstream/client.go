package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spec-kit/ticket-storefront/internal/config"
	"github.com/spec-kit/ticket-storefront/internal/domain"
	apperrors "github.com/spec-kit/ticket-storefront/pkg/util"
)

// Client talks to the remote inventory/booking API. Every gated call carries
// the caller's opaque access token; the client never stores one.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the configured upstream.
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

// RegisterInput is the upstream registration payload.
type RegisterInput struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Password    string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// errorBody is the optional upstream failure payload.
type errorBody struct {
	Detail string `json:"detail"`
}

// ListTickets fetches the full inventory snapshot. The returned order is the
// server's order; no sorting happens here.
func (c *Client) ListTickets(ctx context.Context, token string) ([]domain.Ticket, error) {
	resp, err := c.get(ctx, "/tickets/", token)
	if err != nil {
		return nil, apperrors.NewLoadTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewLoadRemote(resp.StatusCode, readDetail(resp.Body))
	}

	var tickets []domain.Ticket
	if err := json.NewDecoder(resp.Body).Decode(&tickets); err != nil {
		return nil, apperrors.NewLoadRemote(resp.StatusCode, "malformed ticket listing")
	}
	return tickets, nil
}

// CreateBooking submits one booking. The body is ignored on success; on
// rejection the upstream detail message is surfaced verbatim.
func (c *Client) CreateBooking(ctx context.Context, token string, req domain.BookingRequest) error {
	payload := map[string]any{
		"ticket": req.TicketID,
		"name":   req.Name,
		"phone":  req.Phone,
		"email":  req.Email,
	}
	resp, err := c.post(ctx, "/book/", token, payload)
	if err != nil {
		return apperrors.NewBookingTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewBookingRemote(readDetail(resp.Body))
	}
	return nil
}

// ListBookings fetches the caller's confirmed bookings by email.
func (c *Client) ListBookings(ctx context.Context, token, email string) ([]domain.Booking, error) {
	resp, err := c.get(ctx, "/bookings/"+url.PathEscape(email)+"/", token)
	if err != nil {
		return nil, apperrors.NewLoadTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewLoadRemote(resp.StatusCode, readDetail(resp.Body))
	}

	var bookings []domain.Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, apperrors.NewLoadRemote(resp.StatusCode, "malformed booking listing")
	}
	return bookings, nil
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	resp, err := c.post(ctx, "/login/", "", payload)
	if err != nil {
		return "", apperrors.NewDomainError("UPSTREAM_TRANSPORT", "login failed", http.StatusBadGateway, nil)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := readDetail(resp.Body)
		if detail == "" {
			detail = "invalid credentials"
		}
		return "", apperrors.NewUnauthenticated(detail)
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Token == "" {
		return "", apperrors.NewUnauthenticated("login succeeded but no token received")
	}
	return body.Token, nil
}

// Register creates an upstream account. The caller logs in separately.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	resp, err := c.post(ctx, "/register/", "", input)
	if err != nil {
		return apperrors.NewDomainError("UPSTREAM_TRANSPORT", "registration failed", http.StatusBadGateway, nil)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := readDetail(resp.Body)
		if detail == "" {
			detail = "registration failed"
		}
		return apperrors.NewValidationError(detail, nil)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	authorize(req, token)
	return c.http.Do(req)
}

func (c *Client) post(ctx context.Context, path, token string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	authorize(req, token)
	return c.http.Do(req)
}

// authorize sets the upstream's token scheme on gated calls.
func authorize(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
}

// readDetail extracts the optional {detail} message from a failure body.
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return ""
	}
	var parsed errorBody
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ""
	}
	return strings.TrimSpace(parsed.Detail)
}
