// Package api is the typed client for the marketplace backend. Each method
// maps to one REST endpoint; every call is a single attempt with no retries
// and no caching, and non-2xx responses surface as *api.Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"servizo/models"
	"servizo/utils"

	"go.uber.org/zap"
)

// Client talks to the marketplace backend.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New builds a client for the backend at baseURL. The timeout bounds each
// individual request.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  utils.GetLogger().Named("api"),
	}
}

// do runs one request. A non-empty token is attached as a bearer header; out,
// when non-nil, receives the decoded JSON response body.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text, _ := io.ReadAll(resp.Body)
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return &Error{Status: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	var res models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Login exchanges credentials for a token and user.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var res models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Me fetches the current user.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetProviderMode toggles the provider flag on the account.
func (c *Client) SetProviderMode(ctx context.Context, token string, enabled bool) (*models.User, error) {
	var user models.User
	body := map[string]bool{"enabled": enabled}
	if err := c.do(ctx, http.MethodPost, "/me/provider-mode", token, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListServices fetches the catalog matching the filter. Empty filter fields
// are left out of the query string.
func (c *Client) ListServices(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error) {
	q := url.Values{}
	if filter.Query != "" {
		q.Set("q", filter.Query)
	}
	if filter.Country != "" {
		q.Set("country", filter.Country)
	}
	if filter.Province != "" {
		q.Set("province", filter.Province)
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	path := "/services"
	if qs := q.Encode(); qs != "" {
		path += "?" + qs
	}
	var services []models.Service
	if err := c.do(ctx, http.MethodGet, path, "", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetService fetches a single service by id.
func (c *Client) GetService(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := c.do(ctx, http.MethodGet, "/services/"+url.PathEscape(id), "", nil, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// CreateService submits a new listing.
func (c *Client) CreateService(ctx context.Context, token string, draft models.ServiceDraft) (*models.Service, error) {
	var svc models.Service
	if err := c.do(ctx, http.MethodPost, "/services", token, draft, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// UpdateService replaces an existing listing.
func (c *Client) UpdateService(ctx context.Context, token, id string, draft models.ServiceDraft) (*models.Service, error) {
	var svc models.Service
	if err := c.do(ctx, http.MethodPut, "/services/"+url.PathEscape(id), token, draft, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// DeleteService removes a listing. The backend returns no body.
func (c *Client) DeleteService(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/services/"+url.PathEscape(id), token, nil, nil)
}

// CreateBooking submits a booking request.
func (c *Client) CreateBooking(ctx context.Context, token string, draft models.BookingDraft) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", token, draft, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookings fetches the caller's bookings for one role
// (models.RoleCustomer or models.RoleProvider).
func (c *Client) ListBookings(ctx context.Context, token, role string) ([]models.Booking, error) {
	var bookings []models.Booking
	path := "/bookings?role=" + url.QueryEscape(role)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus records the provider's accept/decline decision.
func (c *Client) UpdateBookingStatus(ctx context.Context, token, id, status string) (*models.Booking, error) {
	var booking models.Booking
	body := map[string]string{"status": status}
	path := "/bookings/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, token, body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
