// Package catalog provides an HTTP client for the movie catalog API.
//
// # Overview
//
// The catalog API exposes a single read-only collection endpoint. The client
// issues exactly one GET per call and decodes the result into Movie values
// that the UI renders verbatim.
//
// # Endpoints
//
//   - GET /api/movies: JSON array of movie objects
//   - GET /health: {"status": "healthy"}
//
// The movies endpoint may also answer with an object envelope of the form
// {"movies": [...]}; both shapes decode to the same slice.
//
// # Error Handling
//
// FetchMovies collapses every failure into ErrFetchFailed:
//
//   - Network errors: connection refused, DNS failure
//   - HTTP errors: any status outside 2xx
//   - Deserialization errors: malformed JSON or an unexpected shape
//
// Callers test with errors.Is(err, catalog.ErrFetchFailed); the wrapped chain
// keeps the underlying cause for logging.
//
// Example error messages:
//   - "fetch movies failed: execute request: dial tcp: connection refused"
//   - "fetch movies failed: api /api/movies returned status 500"
//   - "fetch movies failed: decode response: unexpected end of JSON input"
//
// # URL Construction
//
// NewClient accepts a full URL or a bare host:port:
//
//   - "" → http://localhost:3001
//   - "localhost:8080" → http://localhost:8080
//   - "https://movies.example.com/ignored/path" → https://movies.example.com
//
// # Timeouts
//
// The client sets no timeout of its own and performs no retries. A request
// lasts as long as its context allows.
package catalog
