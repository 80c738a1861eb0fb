package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production PPOB backend origin. Tests point the
// client at an httptest server instead.
const DefaultBaseURL = "https://take-home-test-api.nutech-integrasi.com"

// Client performs HTTP calls against the backend REST API. It is
// stateless: the token is passed per call, never stored, so a single
// client serves every request of the process.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client for the given origin. An empty baseURL selects
// the production backend.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// envelope is the uniform response shape {status, message, data}. The
// status field is a pointer because a few responses omit it; when
// present, zero denotes success even on HTTP 200.
type envelope struct {
	Status  *int            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do issues exactly one HTTP request and maps the response onto the
// gateway error taxonomy. A non-nil token is attached as a bearer
// header; body (when non-nil) is sent as JSON.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (*envelope, error) {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.send(req)
}

// authed is like do but refuses to issue the request without a token.
func (c *Client) authed(ctx context.Context, method, path, token string, body any) (*envelope, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	return c.do(ctx, method, path, token, body)
}

// send executes the request and decodes the envelope. Transport
// failures become NetworkError; 401/403 become AuthError; any other
// non-success (HTTP or envelope status) becomes RequestError.
func (c *Client) send(req *http.Request) (*envelope, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, &AuthError{}
		}
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &AuthError{Message: env.Message}
	}
	apiStatus := 0
	if env.Status != nil {
		apiStatus = *env.Status
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || apiStatus != 0 {
		return nil, &RequestError{HTTPStatus: resp.StatusCode, APIStatus: apiStatus, Message: env.Message}
	}
	return &env, nil
}

// decodeData unmarshals the envelope's data field into out.
func decodeData(env *envelope, out any) error {
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
