package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	phttp "github.com/screenlog/screenlog/pkg/http"
)

// ClientInterface is the surface of the TMDB API the service consumes.
// Methods return the raw response; callers own parsing and closing the body.
type ClientInterface interface {
	SearchMovie(ctx context.Context, params *SearchMovieParams) (*http.Response, error)
	SearchTV(ctx context.Context, params *SearchTVParams) (*http.Response, error)
}

type SearchMovieParams struct {
	Query string
	Page  *int
}

type SearchTVParams struct {
	Query string
	Page  *int
}

// Client talks to the TMDB v3 API
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

// New creates a new tmdb client for the given base URL and API read access token
func New(baseURL, apiKey string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tmdb url: %w", err)
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

// SearchMovie queries the movie catalog by title
func (c *Client) SearchMovie(ctx context.Context, params *SearchMovieParams) (*http.Response, error) {
	q := url.Values{}
	q.Set("query", params.Query)
	if params.Page != nil {
		q.Set("page", fmt.Sprint(*params.Page))
	}

	return c.get(ctx, "/3/search/movie", q)
}

// SearchTV queries the tv catalog by title
func (c *Client) SearchTV(ctx context.Context, params *SearchTVParams) (*http.Response, error) {
	q := url.Values{}
	q.Set("query", params.Query)
	if params.Page != nil {
		q.Set("page", fmt.Sprint(*params.Page))
	}

	return c.get(ctx, "/3/search/tv", q)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := *c.baseURL
	u.Path = path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("accept", "application/json")

	return c.client.Do(req)
}
