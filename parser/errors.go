package parser

import "github.com/pkg/errors"

// Error taxonomy. A pattern that simply finds nothing in a span is not an
// error; only these conditions surface to callers.
var (
	// ErrInvalidSpan means no temporal field at all was resolved from a
	// span. The caller decides whether to drop the span or fail the
	// sentence.
	ErrInvalidSpan = errors.New("no temporal field resolved in span")

	// ErrOutOfTableRange means a lunar or solar-term conversion was
	// requested for a year outside the supported calendar tables.
	ErrOutOfTableRange = errors.New("year outside calendar table range")

	// ErrMalformedNumeral means the input carried a numeral token that is
	// not a recognized digit or place character. This indicates the
	// sanitizer contract was violated and fails the whole input.
	ErrMalformedNumeral = errors.New("malformed chinese numeral")
)
