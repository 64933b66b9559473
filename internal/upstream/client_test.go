package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-storefront/internal/config"
	"github.com/spec-kit/ticket-storefront/internal/domain"
	apperrors "github.com/spec-kit/ticket-storefront/pkg/util"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.UpstreamConfig{BaseURL: baseURL, TimeoutSeconds: 2})
}

func TestListTickets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tickets/", r.URL.Path)
		assert.Equal(t, "Token access-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 2, "departure": "Nairobi", "destination": "Mombasa", "date_of_departure": "2026-06-01"},
			{"id": 1, "departure": "Kisumu", "destination": "Nakuru", "date_of_departure": "2026-06-02"},
		})
	}))
	defer server.Close()

	tickets, err := newTestClient(server.URL).ListTickets(context.Background(), "access-token")

	require.NoError(t, err)
	require.Len(t, tickets, 2)
	// Server order is preserved, no sorting.
	assert.Equal(t, int64(2), tickets[0].ID)
	assert.Equal(t, int64(1), tickets[1].ID)
	assert.Equal(t, "Nairobi", tickets[0].Departure)
	assert.Equal(t, domain.NewDepartureDate(2026, time.June, 1), tickets[0].DateOfDeparture)
}

func TestListTicketsRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid token."})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ListTickets(context.Background(), "bad")

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, "LOAD_REMOTE"))
	assert.Equal(t, "Invalid token.", apperrors.ToDomainError(err).Message)
}

func TestListTicketsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ListTickets(context.Background(), "tok")

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, "LOAD_REMOTE"))
}

func TestListTicketsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).ListTickets(context.Background(), "tok")

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, "LOAD_TRANSPORT"))
}

func TestCreateBooking(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/book/", r.URL.Path)
		assert.Equal(t, "Token access-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	err := newTestClient(server.URL).CreateBooking(context.Background(), "access-token", domain.BookingRequest{
		TicketID: 5,
		Name:     "Asha",
		Phone:    "0712345678",
		Email:    "asha@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, float64(5), received["ticket"])
	assert.Equal(t, "Asha", received["name"])
	assert.Equal(t, "0712345678", received["phone"])
	assert.Equal(t, "asha@example.com", received["email"])
}

func TestCreateBookingRemoteRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Ticket no longer available."})
	}))
	defer server.Close()

	err := newTestClient(server.URL).CreateBooking(context.Background(), "tok", domain.BookingRequest{TicketID: 5})

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, "BOOKING_REMOTE"))
	assert.Equal(t, "Ticket no longer available.", apperrors.ToDomainError(err).Message)
}

func TestCreateBookingTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := newTestClient(server.URL).CreateBooking(context.Background(), "tok", domain.BookingRequest{TicketID: 5})

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, "BOOKING_TRANSPORT"))
}

func TestListBookings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/asha@example.com/", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id": 11,
				"ticket": map[string]any{
					"id": 5, "departure": "Nairobi", "destination": "Mombasa",
					"date_of_departure": "2026-06-01",
				},
				"name": "Asha", "phone": "0712345678", "email": "asha@example.com",
			},
		})
	}))
	defer server.Close()

	bookings, err := newTestClient(server.URL).ListBookings(context.Background(), "tok", "asha@example.com")

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(11), bookings[0].ID)
	assert.Equal(t, int64(5), bookings[0].Ticket.ID)
	assert.Equal(t, "Mombasa", bookings[0].Ticket.Destination)
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "asha@example.com", body["email"])
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "access-token"})
	}))
	defer server.Close()

	token, err := newTestClient(server.URL).Login(context.Background(), "asha@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "access-token", token)
}

func TestLoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials."})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Login(context.Background(), "asha@example.com", "wrong")

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))
	assert.Equal(t, "Invalid credentials.", apperrors.ToDomainError(err).Message)
}

func TestLoginMissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Login(context.Background(), "asha@example.com", "secret")

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))
}

func TestRegister(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "M", body["gender"])
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	err := newTestClient(server.URL).Register(context.Background(), RegisterInput{
		Email:       "asha@example.com",
		FirstName:   "Asha",
		LastName:    "Odhiambo",
		DateOfBirth: "1995-04-12",
		Gender:      "M",
		Password:    "secret",
	})

	require.NoError(t, err)
}

func TestRegisterRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Email already in use."})
	}))
	defer server.Close()

	err := newTestClient(server.URL).Register(context.Background(), RegisterInput{Email: "asha@example.com"})

	require.Error(t, err)
	assert.Equal(t, "Email already in use.", apperrors.ToDomainError(err).Message)
}
