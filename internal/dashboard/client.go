package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Package dashboard implements the API client used by the admin dashboard:
// login, collection reads and writes, and the flat-form edit model that
// batches field changes into per-record partial updates.

// ErrSessionExpired is returned when the API rejects the stored token. The
// caller is expected to drop the token and send the user back to login.
var ErrSessionExpired = errors.New("dashboard: session expired")

// Client talks to the portfolio API. The zero value is not usable; construct
// with NewClient. A Client is safe for sequential use only.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
}

// NewClient returns a client for the API at baseURL (no trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc: &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Token returns the stored session token, empty before login.
func (c *Client) Token() string { return c.token }

// SetToken restores a previously issued token, e.g. from local storage.
func (c *Client) SetToken(token string) { c.token = token }

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token and stores it on the
// client for subsequent write calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var res loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", loginRequest{Username: username, Password: password}, &res); err != nil {
		return err
	}
	c.token = res.Token
	return nil
}

// List fetches a collection in display order. Records come back as generic
// maps because the dashboard edits them as flat form fields.
func (c *Client) List(ctx context.Context, collection string) ([]map[string]any, error) {
	var items []map[string]any
	if err := c.do(ctx, http.MethodGet, "/api/"+collection, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create stores a new record and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, collection string, rec map[string]any) (map[string]any, error) {
	var created map[string]any
	if err := c.do(ctx, http.MethodPost, "/api/admin/"+collection, rec, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// Update sends a partial update: only the keys present in patch change.
func (c *Client) Update(ctx context.Context, collection, id string, patch map[string]any) (map[string]any, error) {
	var updated map[string]any
	if err := c.do(ctx, http.MethodPut, "/api/admin/"+collection+"/"+id, patch, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a record. Deleting an already-deleted record succeeds.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/"+collection+"/"+id, nil, nil)
}

type sectionPayload struct {
	Description string `json:"description"`
}

// SectionDescription fetches the history timeline's section text.
func (c *Client) SectionDescription(ctx context.Context) (string, error) {
	var res sectionPayload
	if err := c.do(ctx, http.MethodGet, "/api/history-section", nil, &res); err != nil {
		return "", err
	}
	return res.Description, nil
}

// SetSectionDescription creates or updates the section text.
func (c *Client) SetSectionDescription(ctx context.Context, description string) error {
	return c.do(ctx, http.MethodPut, "/api/admin/history-section", sectionPayload{Description: description}, nil)
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		// Only a rejected stored token means the session is gone; a 401 on
		// login itself is just bad credentials.
		if c.token != "" {
			return ErrSessionExpired
		}
		fallthrough
	case resp.StatusCode >= 400:
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error.Code != "" {
			return fmt.Errorf("dashboard: %s: %s", apiErr.Error.Code, apiErr.Error.Message)
		}
		return fmt.Errorf("dashboard: unexpected status %d", resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
