package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrFetchFailed marks every failure of a movie fetch: transport errors,
// non-success statuses and malformed payloads alike.
var ErrFetchFailed = errors.New("fetch movies failed")

// MovieFetcher is the read contract the catalog view depends on.
type MovieFetcher interface {
	FetchMovies(ctx context.Context) ([]Movie, error)
}

// Ensure Client implements MovieFetcher at compile time.
var _ MovieFetcher = (*Client)(nil)

// Client talks to the movie catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is used when no base address is configured.
	DefaultBaseURL   = "http://localhost:3001"
	defaultUserAgent = "marquee/0.1"

	moviesPath = "/api/movies"
	healthPath = "/health"
)

// NewClient builds a Client for the given base address. The client applies no
// request timeout; callers bound requests through ctx when they need to.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized base address.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchMovies retrieves the full movie collection. Any failure is wrapped with
// ErrFetchFailed.
func (c *Client) FetchMovies(ctx context.Context) ([]Movie, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: client is nil", ErrFetchFailed)
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, moviesPath, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	movies, err := decodeMovies(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrFetchFailed, err)
	}
	return movies, nil
}

// FetchHealth queries the backend health endpoint.
func (c *Client) FetchHealth(ctx context.Context) (HealthResponse, error) {
	if c == nil {
		return HealthResponse{}, fmt.Errorf("client is nil")
	}
	var payload HealthResponse
	if err := c.do(ctx, http.MethodGet, healthPath, &payload); err != nil {
		return HealthResponse{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	reqURL := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeMovies accepts a bare array or the {"movies": [...]} envelope.
func decodeMovies(raw json.RawMessage) ([]Movie, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	switch trimmed[0] {
	case '[':
		var movies []Movie
		if err := json.Unmarshal(trimmed, &movies); err != nil {
			return nil, err
		}
		return movies, nil
	case '{':
		var envelope struct {
			Movies *[]Movie `json:"movies"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, err
		}
		if envelope.Movies == nil {
			return nil, fmt.Errorf("object payload has no movies field")
		}
		return *envelope.Movies, nil
	default:
		return nil, fmt.Errorf("expected movie list, got %.20s", trimmed)
	}
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", baseURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
