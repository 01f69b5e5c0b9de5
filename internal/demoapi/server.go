// Package demoapi serves a small movie catalog over HTTP so marquee can be
// run and exercised without a separate backend.
package demoapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/logging"
)

// DefaultAddr matches the viewer's default API URL.
const DefaultAddr = "127.0.0.1:3001"

// Server provides the demo catalog API.
type Server struct {
	addr   string
	movies []catalog.Movie
	logger *logging.Logger
	server *http.Server
}

// NewServer creates a demo API server. A nil movies slice serves
// SampleMovies.
func NewServer(addr string, movies []catalog.Movie, logger *logging.Logger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	if movies == nil {
		movies = SampleMovies()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Server{addr: addr, movies: movies, logger: logger}
}

// Handler returns the routed gin engine.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/api/movies", s.handleMovies)
	r.GET("/movies", s.handleMoviesEnvelope)
	r.GET("/health", s.handleHealth)
	return r
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on an existing listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(listener)
	}()
	s.logger.Info("demo api listening", "addr", listener.Addr().String(), "movies", len(s.movies))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleMovies(c *gin.Context) {
	c.JSON(http.StatusOK, s.movies)
}

func (s *Server) handleMoviesEnvelope(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.MovieListResponse{Movies: s.movies})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// SampleMovies returns the built-in demo collection.
func SampleMovies() []catalog.Movie {
	return []catalog.Movie{
		{ID: "123", Title: "Top Gun: Maverick", Year: 2022, Genre: "Action", Director: "Joseph Kosinski", Rating: 8.2},
		{ID: "456", Title: "Sonic the Hedgehog", Year: 2020, Genre: "Adventure", Director: "Jeff Fowler", Rating: 6.5},
		{ID: "789", Title: "A Quiet Place", Year: 2018, Genre: "Horror", Director: "John Krasinski", Rating: 7.5},
	}
}
