package viewing

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("input file not found")
	// ErrMissingColumn is returned when a required header is absent.
	ErrMissingColumn = errors.New("missing required column")
	// ErrMalformedTimestamp is returned for an unparseable start time.
	ErrMalformedTimestamp = errors.New("malformed start time")
	// ErrMalformedDuration is returned for an unparseable or negative duration.
	ErrMalformedDuration = errors.New("malformed duration")
	// ErrMalformedNumber is returned for a non-numeric field in a cleaned file.
	ErrMalformedNumber = errors.New("malformed number")
)

// RecordError reports which CSV line and column failed to parse. It unwraps
// to one of the package sentinels.
type RecordError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
