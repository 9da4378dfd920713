// Package remote is the HTTP client for the external clientes service, the
// only durable home of client records. Every request carries the shared
// x-api-key secret; there is no per-user identity.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"clientregistro/models"
)

// ErrBadCollection reports a list response whose body is not a JSON array.
// Callers degrade to an empty list rather than keeping a partial one.
var ErrBadCollection = errors.New("response is not a client collection")

// APIError is a structured error reported by the remote service. Its message
// is preferred over transport errors when surfacing failures to the user.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("remote service returned status %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// List fetches the full record collection.
func (c *Client) List(ctx context.Context) ([]models.Client, error) {
	body, err := c.do(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrBadCollection
	}

	var clients []models.Client
	if err := json.Unmarshal(body, &clients); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCollection, err)
	}
	return clients, nil
}

// Create registers a new record; the service assigns the identifier.
func (c *Client) Create(ctx context.Context, client models.Client) (models.Client, error) {
	client.ID = ""
	body, err := c.do(ctx, http.MethodPost, "/", client)
	if err != nil {
		return models.Client{}, err
	}
	return decodeClient(body, client)
}

// Update replaces the full record stored under id.
func (c *Client) Update(ctx context.Context, id string, client models.Client) (models.Client, error) {
	body, err := c.do(ctx, http.MethodPut, "/"+id, client)
	if err != nil {
		return models.Client{}, err
	}
	return decodeClient(body, client)
}

// UpdateStatus issues a status-only update.
func (c *Client) UpdateStatus(ctx context.Context, id string, estatus models.Status) error {
	payload := map[string]models.Status{"estatus": estatus}
	_, err := c.do(ctx, http.MethodPut, "/estatus/"+id, payload)
	return err
}

// Delete removes the record stored under id.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/"+id, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(body),
		}
	}
	return body, nil
}

// serverMessage extracts the service's structured error text, if any.
func serverMessage(body []byte) string {
	var out struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return ""
	}
	if out.Error != "" {
		return out.Error
	}
	return out.Message
}

// decodeClient returns the record echoed by the service, falling back to the
// submitted one when the body is not a single record.
func decodeClient(body []byte, fallback models.Client) (models.Client, error) {
	var saved models.Client
	if err := json.Unmarshal(body, &saved); err != nil || saved.Nombre == "" {
		return fallback, nil
	}
	return saved, nil
}
