package types

import (
	"errors"
	"fmt"
)

// Lookup and persistence errors.
var (
	ErrNotFound      = errors.New("symbol not found")
	ErrMalformedLine = errors.New("malformed line")
	ErrIOFailure     = errors.New("board file I/O failure")
	ErrInvalidRecord = errors.New("record cannot be encoded")
)

// LineError reports a malformed record together with its position in the
// source. It unwraps to ErrMalformedLine.
type LineError struct {
	Line   int    // 1-based line number.
	Text   string // Raw line as read, without the line terminator.
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *LineError) Unwrap() error {
	return ErrMalformedLine
}
