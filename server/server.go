// Package server exposes the time-expression parser over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/hrygo/zhtime/internal/profile"
	"github.com/hrygo/zhtime/parser"
	"github.com/hrygo/zhtime/server/middleware"
	"github.com/hrygo/zhtime/server/timezone"
)

// Server wires the parser behind an echo HTTP server.
type Server struct {
	Profile *profile.Profile

	echoServer  *echo.Echo
	parser      *parser.DateParser
	rateLimiter *middleware.RateLimiter
}

// NewServer creates the HTTP server for the given profile.
func NewServer(ctx context.Context, p *profile.Profile) (*Server, error) {
	loc, err := timezone.ParseTimezone(p.Timezone)
	if err != nil {
		return nil, errors.Wrap(err, "parse profile timezone")
	}

	dateParser, err := parser.New(
		parser.WithLocation(loc),
		parser.WithPreferFuture(p.PreferFuture),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create parser")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		Profile:     p,
		echoServer:  e,
		parser:      dateParser,
		rateLimiter: middleware.NewRateLimiter(10, 20),
	}
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echoServer.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": s.Profile.Version,
		})
	})

	apiV1 := s.echoServer.Group("/api/v1")
	apiV1.POST("/parse", s.handleParse, s.rateLimitMiddleware)
}

// rateLimitMiddleware rejects clients that exceed the per-IP budget.
func (s *Server) rateLimitMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.rateLimiter.Allow(c.RealIP()) {
			return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
		}
		return next(c)
	}
}

// Start begins serving and blocks until the listener fails or the context
// is cancelled.
func (s *Server) Start(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("server started",
		slog.String("address", address),
		slog.String("timezone", s.Profile.Timezone),
		slog.String("version", s.Profile.Version))

	if err := s.echoServer.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server", slog.Any("error", err))
	}

	slog.Info("server stopped")
}
