// Package api implements the HTTP access layer of the owner panel. It is
// stateless, performs a single attempt per call and leaves any retry policy
// to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/patiparn/rodchao/internal/models"
)

// Client is the remote-API surface consumed by the store and the password
// flow. The concrete transport is hidden behind it so tests can substitute
// a stub.
type Client interface {
	// ListCars fetches every listing owned by ownerEmail, in server order.
	ListCars(ctx context.Context, ownerEmail string) ([]models.Car, error)

	// DeleteCar removes one listing. The server re-validates that the
	// listing belongs to ownerEmail before deleting.
	DeleteCar(ctx context.Context, id string, ownerEmail string) error

	// VerifyPassword checks the current password. A negative answer is a
	// regular result, not an error.
	VerifyPassword(ctx context.Context, email string, password string) (bool, error)

	// ChangePassword replaces the account password.
	ChangePassword(ctx context.Context, email string, current string, newPassword string) error

	Close() error
}

type listResponse struct {
	Success bool         `json:"success"`
	Cars    []models.Car `json:"cars,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// HTTPClient talks JSON over HTTP to the rental backend.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://127.0.0.1:8000". The timeout bounds every individual request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		hc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// do issues one request and decodes the JSON body into out. Transport
// failures map to ErrNetwork, undecodable bodies to ErrParse. Application
// level failure (success=false) is left for the caller to interpret,
// because the envelope differs per endpoint.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}

func (c *HTTPClient) ListCars(ctx context.Context, ownerEmail string) ([]models.Car, error) {
	q := url.Values{}
	q.Set("email", ownerEmail)

	var out listResponse
	if err := c.do(ctx, http.MethodGet, "/api/get-user-cars", q, nil, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, &appError{msg: out.Error}
	}
	return out.Cars, nil
}

func (c *HTTPClient) DeleteCar(ctx context.Context, id string, ownerEmail string) error {
	body := map[string]string{"userEmail": ownerEmail}

	var out statusResponse
	path := "/api/delete-car/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, body, &out); err != nil {
		return err
	}
	if !out.Success {
		return &appError{msg: out.Error}
	}
	return nil
}

func (c *HTTPClient) VerifyPassword(ctx context.Context, email string, password string) (bool, error) {
	body := map[string]string{"email": email, "password": password}

	var out statusResponse
	if err := c.do(ctx, http.MethodPost, "/api/verify-password", nil, body, &out); err != nil {
		return false, err
	}
	return out.Success, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, email string, current string, newPassword string) error {
	body := map[string]string{
		"email":           email,
		"currentPassword": current,
		"newPassword":     newPassword,
	}

	var out statusResponse
	if err := c.do(ctx, http.MethodPost, "/api/change-password", nil, body, &out); err != nil {
		return err
	}
	if !out.Success {
		return &appError{msg: out.Error}
	}
	return nil
}

// Close releases idle connections held by the transport.
func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}
