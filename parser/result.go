package parser

import "time"

// ResultType classifies what a sentence resolved to.
type ResultType string

const (
	// ResultTimestamp is a single point in time.
	ResultTimestamp ResultType = "timestamp"
	// ResultTimespan is a pair of points, e.g. "周六3點到5點".
	ResultTimespan ResultType = "timespan"
	// ResultTimedelta is a pure duration, e.g. "3天後".
	ResultTimedelta ResultType = "timedelta"
	// ResultInvalid means no usable time expression was found.
	ResultInvalid ResultType = "invalid"
)

// Result is the outcome of parsing one sentence.
type Result struct {
	Type ResultType `json:"type"`

	// Points holds the resolved field-level views, one per span.
	Points []TimePoint `json:"points,omitempty"`

	// Times holds the materialized instants matching Points.
	Times []time.Time `json:"times,omitempty"`

	// Delta is set for timedelta results; Points/Times then hold the
	// instant the duration lands on relative to the basetime.
	Delta *Delta `json:"delta,omitempty"`
}
