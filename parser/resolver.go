package parser

import (
	"log/slog"
	"time"
)

// Settings controls how a span is resolved.
type Settings struct {
	// PreferFuture resolves under-specified, seemingly-past expressions
	// to their next future occurrence.
	PreferFuture bool
}

// spanResolver resolves one expression span against a basetime. It is
// created per span, runs the resolution stages in a fixed order and is
// discarded; nothing is shared between spans except the one-directional
// context copy.
type spanResolver struct {
	text     string
	basetime time.Time
	context  *TimePoint
	settings Settings
	logger   *slog.Logger

	tp      TimePoint
	delta   Delta
	isDelta bool
}

// ResolveSpan resolves one expression span. context is the previous span's
// resolved TimePoint, or nil for the first span of a sentence. The second
// return value is non-nil when the span is a pure duration ("3天後").
func ResolveSpan(span string, basetime time.Time, context *TimePoint, settings Settings) (TimePoint, *Delta, error) {
	return resolveSpan(span, basetime, context, settings, slog.Default())
}

func resolveSpan(span string, basetime time.Time, context *TimePoint, settings Settings, logger *slog.Logger) (TimePoint, *Delta, error) {
	r := &spanResolver{
		text:     span,
		basetime: basetime,
		context:  context,
		settings: settings,
		logger:   logger,
	}
	return r.resolve()
}

// resolve runs the pipeline. The stage order is a contract: a later stage
// may depend on fields written by an earlier one (period-of-day folds the
// hour written by absolute time; context fill anchors prefer-future).
func (r *spanResolver) resolve() (TimePoint, *Delta, error) {
	stages := []struct {
		name string
		run  func() error
	}{
		{"absolute_date", r.normAbsoluteDate},
		{"absolute_time", r.normAbsoluteTime},
		{"period_of_day", r.normPeriodOfDay},
		{"relative", r.normRelative},
		{"holiday", r.normHoliday},
		{"preposition_delta", r.normPrepDelta},
		{"context_fill", r.fillFromContext},
		{"prefer_future", r.applyPreferFuture},
	}

	for _, stage := range stages {
		if err := stage.run(); err != nil {
			return TimePoint{}, nil, err
		}
	}

	r.fillBasetime()

	granularity, err := classifyGranularity(&r.tp)
	if err != nil {
		return TimePoint{}, nil, err
	}
	r.tp.Granularity = granularity

	r.fillDefaults()

	r.logger.Debug("span resolved",
		slog.String("span", r.text),
		slog.String("granularity", granularity.String()),
		slog.Bool("delta", r.isDelta))

	if r.isDelta {
		d := r.delta
		return r.tp, &d, nil
	}
	return r.tp, nil, nil
}

// fillFromContext inherits fields the span's own rules left unset from the
// previous span's resolved point. Only fields coarser than the coarsest
// field this span set are inherited, so "到5點" borrows the date of
// "周六3點" without borrowing its minutes.
func (r *spanResolver) fillFromContext() error {
	if r.context == nil || !r.context.HasAnyField() || r.isDelta {
		return nil
	}

	coarsest := r.tp.coarsestSetUnit()
	if coarsest <= unitYear {
		return nil
	}

	for unit := unitYear; unit < coarsest; unit++ {
		if !r.tp.field(unit).IsSet() && r.context.field(unit).IsSet() {
			r.tp.setField(unit, r.context.field(unit).Value())
		}
	}

	// An afternoon context carries over: a bare hour below 12 following an
	// hour at or past 12 reads as the same half of the day.
	if r.tp.Hour.IsSet() && r.tp.PeriodOfDay == "" &&
		r.context.Hour.IsSet() && r.context.Hour.Value() >= 12 && r.tp.Hour.Value() < 12 {
		r.tp.Hour = SetInt(r.tp.Hour.Value() + 12)
	}

	return nil
}

// fillBasetime fills the gap between the finest resolved field and the
// coarsest from the basetime, finest to coarsest, so "3點" lands on the
// basetime's own date.
func (r *spanResolver) fillBasetime() {
	// A bare period-of-day ("下午") still names the basetime's date.
	if r.tp.PeriodOfDay != "" && !r.tp.Day.IsSet() && r.tp.coarsestSetUnit() == -1 {
		r.tp.Day = SetInt(r.basetime.Day())
	}

	cascades := [][2]int{
		{unitSecond, unitMinute},
		{unitMinute, unitHour},
		{unitHour, unitDay},
		{unitDay, unitMonth},
		{unitMonth, unitYear},
	}
	for _, c := range cascades {
		fine, coarse := c[0], c[1]
		if r.tp.field(fine).IsSet() && !r.tp.field(coarse).IsSet() {
			r.tp.setField(coarse, fieldValueOf(r.basetime, coarse))
		}
	}
}

// fillDefaults defaults the fields finer than the resolved granularity:
// month/day to 1, clock fields to 0. Re-running it on a finalized point is
// a no-op since it only touches unset fields.
func (r *spanResolver) fillDefaults() {
	if !r.tp.Month.IsSet() {
		r.tp.Month = SetInt(1)
	}
	if !r.tp.Day.IsSet() {
		r.tp.Day = SetInt(1)
	}
	if !r.tp.Hour.IsSet() {
		r.tp.Hour = SetInt(0)
	}
	if !r.tp.Minute.IsSet() {
		r.tp.Minute = SetInt(0)
	}
	if !r.tp.Second.IsSet() {
		r.tp.Second = SetInt(0)
	}
}
