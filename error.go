package mile

import (
	"errors"
	"fmt"
)

// ErrEndOfInput is returned by Step once the window can no longer grow and no
// unconsumed text remains. It marks clean exhaustion of the buffer, not a
// failure.
var ErrEndOfInput = errors.New("end of input")

// ErrNoSignal is reserved for diagnostics that carry no context. Nothing
// produces it today.
var ErrNoSignal = errors.New("no signal")

// UnrecognizedTokenError is returned by Step when the buffer is exhausted but
// the trailing window matched no rule.
type UnrecognizedTokenError struct {
	Text string
	Pos  Position
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("%s: unrecognized token %q", e.Pos, e.Text)
}
