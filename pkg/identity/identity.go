package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	phttp "github.com/screenlog/screenlog/pkg/http"
)

// ErrInvalidToken indicates the identity provider rejected the credential.
var ErrInvalidToken = errors.New("invalid or expired token")

// User is the identity attached to a request after verification
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verifier validates a bearer token against the identity provider
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (*User, error)
}

// Client verifies tokens against a GoTrue-style identity provider
type Client struct {
	baseURL *url.URL
	apiKey  string
	client  phttp.HTTPClient
}

type ClientOption func(*Client)

// WithHTTPClient sets the http client used for requests
func WithHTTPClient(client phttp.HTTPClient) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// New creates a new identity client for the given provider URL and service key
func New(baseURL, apiKey string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse identity provider url: %w", err)
	}

	c := &Client{
		baseURL: u,
		apiKey:  apiKey,
		client:  phttp.NewRateLimitedHTTPClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// VerifyToken asks the identity provider who the token belongs to.
// The provider owns all session state; nothing is cached here.
func (c *Client) VerifyToken(ctx context.Context, token string) (*User, error) {
	u := *c.baseURL
	u.Path = "/auth/v1/user"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Authorization", "Bearer "+token)
	req.Header.Add("apikey", c.apiKey)
	req.Header.Add("accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach identity provider: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrInvalidToken
	default:
		return nil, fmt.Errorf("identity provider returned status %d", res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(b, &user); err != nil {
		return nil, fmt.Errorf("failed to parse identity provider response: %w", err)
	}

	if user.ID == "" {
		return nil, ErrInvalidToken
	}

	return &user, nil
}
