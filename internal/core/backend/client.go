package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"uniform-storefront/internal/core/httpclient"
)

// APIError is a non-2xx response from the store backend.
// Message carries the backend-provided text when present, otherwise a
// status-mapped fallback the UI can show verbatim.
type APIError struct {
	// Status is the HTTP status code returned by the backend.
	Status int
	// Message is the human-readable error description.
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody is the JSON error envelope the backend uses.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

// Client is a thin JSON client for the store backend REST API.
// Requests carry a bearer token when the caller supplies one.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a backend client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    httpclient.NewClient(timeout),
	}
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path, token string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

// Post performs a POST request with a JSON body and decodes the response into out.
// A nil body sends an empty request body.
func (c *Client) Post(ctx context.Context, path, token string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error de red al conectar con el servidor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.asAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// asAPIError maps a non-2xx response to an APIError, preferring the
// backend's own message and falling back to contextual wording per status.
func (c *Client) asAPIError(resp *http.Response) *APIError {
	var envelope errorBody
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	msg := envelope.Message
	if msg == "" {
		msg = envelope.Err
	}

	// Server errors never leak upstream internals to the user.
	if resp.StatusCode >= 500 {
		msg = "Error del servidor. Por favor, intenta más tarde."
	}

	if msg == "" {
		switch resp.StatusCode {
		case http.StatusConflict:
			msg = "Este email ya está registrado. Por favor, inicia sesión o usa otro email."
		case http.StatusUnauthorized:
			msg = "Credenciales inválidas. Verifica tu email y contraseña."
		case http.StatusBadRequest:
			msg = "Datos inválidos. Por favor, verifica la información ingresada."
		case http.StatusNotFound:
			msg = "Recurso no encontrado."
		default:
			msg = fmt.Sprintf("Error HTTP: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
	}

	return &APIError{Status: resp.StatusCode, Message: msg}
}
