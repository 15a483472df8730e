package parser

import (
	"encoding/json"
	"fmt"
	"time"
)

// OptInt is a calendar field that distinguishes "unset" from a real zero
// value. hour=0 and second=0 are legitimate values, so a sentinel like -1
// cannot stand in for "unset".
type OptInt struct {
	value int
	set   bool
}

// SetInt returns an OptInt holding v.
func SetInt(v int) OptInt { return OptInt{value: v, set: true} }

// IsSet reports whether the field holds a value.
func (o OptInt) IsSet() bool { return o.set }

// Value returns the held value, or 0 when unset.
func (o OptInt) Value() int { return o.value }

// Or returns the held value, or def when unset.
func (o OptInt) Or(def int) int {
	if o.set {
		return o.value
	}
	return def
}

// Granularity classifies which calendar/clock fields a resolved point
// meaningfully specifies, coarsest to finest.
type Granularity int

const (
	GranularityUnknown Granularity = iota
	GranularityYear
	GranularityYearMonth
	GranularityDate
	GranularityDateWithPeriod
	GranularityDateHour
	GranularityDateTime
)

var granularityNames = map[Granularity]string{
	GranularityUnknown:        "unknown",
	GranularityYear:           "year",
	GranularityYearMonth:      "year_month",
	GranularityDate:           "date",
	GranularityDateWithPeriod: "date_with_period",
	GranularityDateHour:       "date_hour",
	GranularityDateTime:       "datetime",
}

func (g Granularity) String() string {
	if name, ok := granularityNames[g]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so Granularity renders as
// its name in JSON responses.
func (g Granularity) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, the inverse of
// MarshalText.
func (g *Granularity) UnmarshalText(text []byte) error {
	name := string(text)
	for value, n := range granularityNames {
		if n == name {
			*g = value
			return nil
		}
	}
	*g = GranularityUnknown
	return nil
}

// Unit indexes into a TimePoint's fields, coarsest first. The ordering is a
// contract: resolution stages, fill cascades and the future-preference
// heuristic all iterate fields in this order.
const (
	unitYear = iota
	unitMonth
	unitDay
	unitHour
	unitMinute
	unitSecond
	unitCount
)

var unitNames = [unitCount]string{"year", "month", "day", "hour", "minute", "second"}

// TimePoint accumulates the calendar fields resolved from one expression
// span. It starts empty, is mutated by the resolution stages in a fixed
// order, and is finalized (granularity stamped, empty fields defaulted)
// before being returned.
type TimePoint struct {
	Year   OptInt `json:"-"`
	Month  OptInt `json:"-"`
	Day    OptInt `json:"-"`
	Hour   OptInt `json:"-"`
	Minute OptInt `json:"-"`
	Second OptInt `json:"-"`

	// PeriodOfDay holds the raw matched period text, e.g. "下午".
	PeriodOfDay string `json:"period_of_day,omitempty"`

	Granularity Granularity `json:"granularity,omitempty"`
}

// field returns the field at the given unit index.
func (tp *TimePoint) field(unit int) OptInt {
	switch unit {
	case unitYear:
		return tp.Year
	case unitMonth:
		return tp.Month
	case unitDay:
		return tp.Day
	case unitHour:
		return tp.Hour
	case unitMinute:
		return tp.Minute
	case unitSecond:
		return tp.Second
	}
	return OptInt{}
}

// setField sets the field at the given unit index.
func (tp *TimePoint) setField(unit, v int) {
	switch unit {
	case unitYear:
		tp.Year = SetInt(v)
	case unitMonth:
		tp.Month = SetInt(v)
	case unitDay:
		tp.Day = SetInt(v)
	case unitHour:
		tp.Hour = SetInt(v)
	case unitMinute:
		tp.Minute = SetInt(v)
	case unitSecond:
		tp.Second = SetInt(v)
	}
}

// HasAnyField reports whether at least one calendar field was resolved.
// A span with no resolved field at all is invalid.
func (tp *TimePoint) HasAnyField() bool {
	for unit := unitYear; unit < unitCount; unit++ {
		if tp.field(unit).IsSet() {
			return true
		}
	}
	return tp.PeriodOfDay != ""
}

// coarsestSetUnit returns the index of the coarsest set field, or -1 when
// no field is set.
func (tp *TimePoint) coarsestSetUnit() int {
	for unit := unitYear; unit < unitCount; unit++ {
		if tp.field(unit).IsSet() {
			return unit
		}
	}
	return -1
}

// fieldValueOf extracts the calendar field of t at the given unit index.
func fieldValueOf(t time.Time, unit int) int {
	switch unit {
	case unitYear:
		return t.Year()
	case unitMonth:
		return int(t.Month())
	case unitDay:
		return t.Day()
	case unitHour:
		return t.Hour()
	case unitMinute:
		return t.Minute()
	case unitSecond:
		return t.Second()
	}
	return 0
}

// shiftByUnit shifts t by n calendar-correct units at the given index.
func shiftByUnit(t time.Time, unit, n int) time.Time {
	switch unit {
	case unitYear:
		return t.AddDate(n, 0, 0)
	case unitMonth:
		return t.AddDate(0, n, 0)
	case unitDay:
		return t.AddDate(0, 0, n)
	case unitHour:
		return t.Add(time.Duration(n) * time.Hour)
	case unitMinute:
		return t.Add(time.Duration(n) * time.Minute)
	case unitSecond:
		return t.Add(time.Duration(n) * time.Second)
	}
	return t
}

// FromTime returns a TimePoint with all six fields taken from t.
func FromTime(t time.Time) TimePoint {
	return TimePoint{
		Year:   SetInt(t.Year()),
		Month:  SetInt(int(t.Month())),
		Day:    SetInt(t.Day()),
		Hour:   SetInt(t.Hour()),
		Minute: SetInt(t.Minute()),
		Second: SetInt(t.Second()),
	}
}

// Time materializes the point as an instant in loc. Unset fields are read
// as their finalized defaults (month/day 1, clock fields 0).
func (tp *TimePoint) Time(loc *time.Location) time.Time {
	return time.Date(
		tp.Year.Or(1),
		time.Month(tp.Month.Or(1)),
		tp.Day.Or(1),
		tp.Hour.Or(0),
		tp.Minute.Or(0),
		tp.Second.Or(0),
		0, loc,
	)
}

// classifyGranularity derives the granularity tag from which fields are
// set. Presence, not value, decides: minute=0 still means DateTime.
func classifyGranularity(tp *TimePoint) (Granularity, error) {
	switch {
	case tp.Second.IsSet() || tp.Minute.IsSet():
		return GranularityDateTime, nil
	case tp.Hour.IsSet():
		return GranularityDateHour, nil
	case tp.PeriodOfDay != "":
		return GranularityDateWithPeriod, nil
	case tp.Day.IsSet():
		return GranularityDate, nil
	case tp.Month.IsSet():
		return GranularityYearMonth, nil
	case tp.Year.IsSet():
		return GranularityYear, nil
	}
	return GranularityUnknown, ErrInvalidSpan
}

// String renders the point in Chinese at its own granularity.
func (tp *TimePoint) String() string {
	switch tp.Granularity {
	case GranularityYear:
		return fmt.Sprintf("%d年", tp.Year.Or(0))
	case GranularityYearMonth:
		return fmt.Sprintf("%d年%02d月", tp.Year.Or(0), tp.Month.Or(1))
	case GranularityDate:
		return fmt.Sprintf("%d年%02d月%02d日", tp.Year.Or(0), tp.Month.Or(1), tp.Day.Or(1))
	case GranularityDateWithPeriod:
		return fmt.Sprintf("%d年%02d月%02d日%s", tp.Year.Or(0), tp.Month.Or(1), tp.Day.Or(1), tp.PeriodOfDay)
	case GranularityDateHour:
		return fmt.Sprintf("%d年%02d月%02d日%02d點", tp.Year.Or(0), tp.Month.Or(1), tp.Day.Or(1), tp.Hour.Or(0))
	case GranularityDateTime:
		if tp.Second.IsSet() {
			return fmt.Sprintf("%d年%02d月%02d日%02d點%02d分%02d秒",
				tp.Year.Or(0), tp.Month.Or(1), tp.Day.Or(1), tp.Hour.Or(0), tp.Minute.Or(0), tp.Second.Or(0))
		}
		return fmt.Sprintf("%d年%02d月%02d日%02d點%02d分",
			tp.Year.Or(0), tp.Month.Or(1), tp.Day.Or(1), tp.Hour.Or(0), tp.Minute.Or(0))
	}
	return ""
}

// ptr returns the value as a pointer, or nil when unset. Used for JSON
// rendering where "unset" must stay distinguishable from zero.
func (o OptInt) ptr() *int {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// MarshalJSON renders set fields only, plus the granularity name and the
// Chinese rendering of the point.
func (tp TimePoint) MarshalJSON() ([]byte, error) {
	aux := struct {
		Year        *int   `json:"year,omitempty"`
		Month       *int   `json:"month,omitempty"`
		Day         *int   `json:"day,omitempty"`
		Hour        *int   `json:"hour,omitempty"`
		Minute      *int   `json:"minute,omitempty"`
		Second      *int   `json:"second,omitempty"`
		PeriodOfDay string `json:"period_of_day,omitempty"`
		Granularity string `json:"granularity"`
		Text        string `json:"text,omitempty"`
	}{
		Year:        tp.Year.ptr(),
		Month:       tp.Month.ptr(),
		Day:         tp.Day.ptr(),
		Hour:        tp.Hour.ptr(),
		Minute:      tp.Minute.ptr(),
		Second:      tp.Second.ptr(),
		PeriodOfDay: tp.PeriodOfDay,
		Granularity: tp.Granularity.String(),
		Text:        tp.String(),
	}
	return json.Marshal(aux)
}

// Delta is an unsigned calendar duration. Sign carries the direction the
// expression named: -1 for 前 (before), +1 for 後 (after).
type Delta struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`

	Sign int `json:"sign"`
}

// add accumulates n units at the given index.
func (d *Delta) add(unit, n int) {
	switch unit {
	case unitYear:
		d.Years += n
	case unitMonth:
		d.Months += n
	case unitDay:
		d.Days += n
	case unitHour:
		d.Hours += n
	case unitMinute:
		d.Minutes += n
	case unitSecond:
		d.Seconds += n
	}
}

// IsZero reports whether no magnitude was recorded.
func (d *Delta) IsZero() bool {
	return d.Years == 0 && d.Months == 0 && d.Days == 0 &&
		d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0
}
