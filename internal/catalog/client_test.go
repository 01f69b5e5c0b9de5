package catalog

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("base = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("example.com:1234")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:1234" {
		t.Fatalf("url = %q, want http://example.com:1234", u.String())
	}

	u, err = parseBaseURL("https://example.com/backend/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != "https://example.com/backend" {
		t.Fatalf("url = %q, want https://example.com/backend", u.String())
	}
}

func TestClient_FetchMoviesKeepsBasePath(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.URL.Path != "/backend/api/movies" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`[{"id": 1, "title": "A"}]`))
	}))
	t.Cleanup(server.Close)

	for _, base := range []string{server.URL + "/backend", server.URL + "/backend/"} {
		c, err := NewClient(base)
		if err != nil {
			t.Fatalf("NewClient(%q) returned error: %v", base, err)
		}
		movies, err := c.FetchMovies(context.Background())
		if err != nil {
			t.Fatalf("FetchMovies via %q returned error: %v (path %q)", base, err, gotPath)
		}
		if len(movies) != 1 || movies[0].Title != "A" {
			t.Fatalf("movies = %#v, want one entry", movies)
		}
	}
}

func TestParseBaseURL_RejectsMissingHost(t *testing.T) {
	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL returned nil error, want missing host error")
	}
}

func TestClient_FetchMovies(t *testing.T) {
	t.Parallel()

	var gotPath, gotMethod, gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "title": "Test Movie", "year": 2024, "genre": "Action", "director": "Test Director", "rating": 8.5},
			{"id": "tt-2", "title": "Second", "year": 1999, "genre": "Drama", "director": "Someone", "rating": 7}
		]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	movies, err := c.FetchMovies(ctx)
	if err != nil {
		t.Fatalf("FetchMovies returned error: %v", err)
	}
	if gotPath != "/api/movies" || gotMethod != http.MethodGet {
		t.Fatalf("request = %s %s, want GET /api/movies", gotMethod, gotPath)
	}
	if !strings.HasPrefix(gotUserAgent, "marquee/") {
		t.Fatalf("User-Agent = %q, want marquee/*", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
	if len(movies) != 2 {
		t.Fatalf("len(movies) = %d, want 2", len(movies))
	}
	first := movies[0]
	if first.ID != "1" || first.Title != "Test Movie" || first.Year != 2024 ||
		first.Genre != "Action" || first.Director != "Test Director" || first.Rating != 8.5 {
		t.Fatalf("first movie = %#v", first)
	}
	if movies[1].ID != "tt-2" {
		t.Fatalf("second id = %q, want tt-2", movies[1].ID)
	}
}

func TestClient_FetchMoviesAcceptsEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"movies": [{"id": "123", "title": "Top Gun: Maverick"}]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	movies, err := c.FetchMovies(context.Background())
	if err != nil {
		t.Fatalf("FetchMovies returned error: %v", err)
	}
	if len(movies) != 1 || movies[0].ID != "123" || movies[0].Title != "Top Gun: Maverick" {
		t.Fatalf("movies = %#v, want one Top Gun entry", movies)
	}
}

func TestClient_FetchMoviesFailuresWrapSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusInternalServerError)
			},
			want: "returned status 500",
		},
		{
			name: "redirect status without location",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotModified)
			},
			want: "returned status 304",
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not-json"))
			},
			want: "decode response",
		},
		{
			name: "trailing data after array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"id":1,"title":"A"}] <html>oops`))
			},
			want: "decode response",
		},
		{
			name: "wrong shape",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`"just a string"`))
			},
			want: "decode response",
		},
		{
			name: "object without movies",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"items": []}`))
			},
			want: "no movies field",
		},
		{
			name: "non scalar id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"id": {"nested": 1}}]`))
			},
			want: "must be a scalar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			t.Cleanup(server.Close)

			c, err := NewClient(server.URL)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			movies, err := c.FetchMovies(context.Background())
			if err == nil {
				t.Fatalf("FetchMovies returned nil error, movies=%#v", movies)
			}
			if !errors.Is(err, ErrFetchFailed) {
				t.Fatalf("FetchMovies error = %v, want ErrFetchFailed", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("FetchMovies error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestClient_FetchMoviesNetworkError(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	addr := listener.Addr().String()
	_ = listener.Close()

	c, err := NewClient(addr)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchMovies(context.Background())
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("FetchMovies error = %v, want ErrFetchFailed", err)
	}
	if !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("FetchMovies error = %q, want execute request", err.Error())
	}
}

func TestClient_FetchHealth(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"status": "healthy"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	health, err := c.FetchHealth(context.Background())
	if err != nil {
		t.Fatalf("FetchHealth returned error: %v", err)
	}
	if !health.Healthy() {
		t.Fatalf("health = %#v, want healthy", health)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchMovies(context.Background()); !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("FetchMovies on nil client = %v, want ErrFetchFailed", err)
	}
	if c.BaseURL() != "" {
		t.Fatalf("BaseURL on nil client = %q, want empty", c.BaseURL())
	}
}
