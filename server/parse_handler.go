package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hrygo/zhtime/parser"
	"github.com/hrygo/zhtime/server/timezone"
)

// ParseRequest is the body of POST /api/v1/parse.
type ParseRequest struct {
	// Text is the sentence to resolve.
	Text string `json:"text"`
	// Basetime anchors relative expressions; RFC 3339. Empty means now.
	Basetime string `json:"basetime,omitempty"`
	// Timezone overrides the server's configured zone for this request.
	Timezone string `json:"timezone,omitempty"`
	// PreferFuture overrides the server's future-preference setting.
	PreferFuture *bool `json:"prefer_future,omitempty"`
}

// ParseResponse is the reply of POST /api/v1/parse.
type ParseResponse struct {
	RequestID string        `json:"request_id"`
	Result    parser.Result `json:"result"`
}

func (s *Server) handleParse(c echo.Context) error {
	requestID := uuid.NewString()
	logger := slog.With(slog.String("request_id", requestID))

	var req ParseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	p := s.parser
	if req.Timezone != "" || req.PreferFuture != nil {
		loc := s.parser.Location()
		if req.Timezone != "" {
			var err error
			loc, err = timezone.ParseTimezone(req.Timezone)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
		}
		preferFuture := s.Profile.PreferFuture
		if req.PreferFuture != nil {
			preferFuture = *req.PreferFuture
		}
		var err error
		p, err = parser.New(
			parser.WithLocation(loc),
			parser.WithPreferFuture(preferFuture),
		)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	basetime := timezone.NowInTimezone(p.Location())
	if req.Basetime != "" {
		t, err := time.Parse(time.RFC3339, req.Basetime)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "basetime must be RFC 3339")
		}
		basetime = t
	}

	start := time.Now()
	result, err := p.ParseAt(req.Text, basetime)
	if err != nil {
		if errors.Is(err, parser.ErrMalformedNumeral) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		logger.Error("parse failed", slog.Any("error", err))
		return echo.NewHTTPError(http.StatusInternalServerError, "parse failed")
	}

	logger.Info("parsed",
		slog.String("type", string(result.Type)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	return c.JSON(http.StatusOK, ParseResponse{
		RequestID: requestID,
		Result:    result,
	})
}
