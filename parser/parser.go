// Package parser resolves Traditional-Chinese natural-language time
// expressions ("兩年前的七月十五號下午三點半") against a basetime into
// structured points, spans or durations.
package parser

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"
)

// DefaultTimezone anchors parsing when no location is configured.
const DefaultTimezone = "Asia/Taipei"

// DateParser parses sentences. It is immutable after New and safe for
// concurrent use.
type DateParser struct {
	location     *time.Location
	preferFuture bool
	now          func() time.Time
	logger       *slog.Logger
}

// Option customizes a DateParser.
type Option func(*DateParser) error

// WithLocation sets the location basetimes are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(p *DateParser) error {
		if loc == nil {
			return errors.New("nil location")
		}
		p.location = loc
		return nil
	}
}

// WithTimezone sets the location by IANA name.
func WithTimezone(name string) Option {
	return func(p *DateParser) error {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return errors.Wrapf(err, "load timezone %q", name)
		}
		p.location = loc
		return nil
	}
}

// WithPreferFuture controls whether under-specified past-looking
// expressions resolve to their next future occurrence. Defaults to true.
func WithPreferFuture(prefer bool) Option {
	return func(p *DateParser) error {
		p.preferFuture = prefer
		return nil
	}
}

// WithNow overrides the clock; tests pin it to a fixed instant.
func WithNow(now func() time.Time) Option {
	return func(p *DateParser) error {
		if now == nil {
			return errors.New("nil now func")
		}
		p.now = now
		return nil
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *DateParser) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		p.logger = logger
		return nil
	}
}

// New builds a DateParser in Asia/Taipei with future preference on.
func New(opts ...Option) (*DateParser, error) {
	p := &DateParser{
		preferFuture: true,
		now:          time.Now,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.location == nil {
		loc, err := time.LoadLocation(DefaultTimezone)
		if err != nil {
			return nil, errors.Wrapf(err, "load timezone %q", DefaultTimezone)
		}
		p.location = loc
	}
	return p, nil
}

// Location returns the parser's location.
func (p *DateParser) Location() *time.Location {
	return p.location
}

// Parse resolves text against the current clock.
func (p *DateParser) Parse(text string) (Result, error) {
	return p.ParseAt(text, p.now())
}

// ParseAt resolves text against an explicit basetime. Spans resolve left
// to right; each resolved span becomes context for the next, so "周6
// 3點到5點" reads the second clock as the same afternoon. A span whose
// resolution fails is skipped, not fatal; only malformed input (a numeral
// run that cannot be read) fails the whole call.
func (p *DateParser) ParseAt(text string, basetime time.Time) (Result, error) {
	basetime = basetime.In(p.location)

	sanitized, err := Sanitize(text)
	if err != nil {
		return Result{Type: ResultInvalid}, err
	}

	spans := ExtractSpans(sanitized)
	if len(spans) == 0 {
		p.logger.Debug("no time expression found", slog.String("text", text))
		return Result{Type: ResultInvalid}, nil
	}

	settings := Settings{PreferFuture: p.preferFuture}

	var (
		points  []TimePoint
		deltas  []*Delta
		context *TimePoint
	)
	for _, span := range spans {
		tp, delta, err := resolveSpan(span, basetime, context, settings, p.logger)
		if err != nil {
			p.logger.Debug("span skipped",
				slog.String("span", span), slog.Any("error", err))
			continue
		}
		points = append(points, tp)
		if delta != nil {
			deltas = append(deltas, delta)
		}
		last := tp
		context = &last
	}

	return p.assemble(points, deltas), nil
}

// assemble turns resolved spans into a Result. A lone duration span is a
// timedelta; otherwise one point is a timestamp, two a timespan, and
// anything else invalid.
func (p *DateParser) assemble(points []TimePoint, deltas []*Delta) Result {
	times := make([]time.Time, len(points))
	for i := range points {
		times[i] = points[i].Time(p.location)
	}

	switch {
	case len(points) == 1 && len(deltas) == 1:
		return Result{Type: ResultTimedelta, Points: points, Times: times, Delta: deltas[0]}
	case len(points) == 1:
		return Result{Type: ResultTimestamp, Points: points, Times: times}
	case len(points) == 2 && len(deltas) == 0:
		return Result{Type: ResultTimespan, Points: points, Times: times}
	}

	return Result{Type: ResultInvalid}
}
