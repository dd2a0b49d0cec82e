package mile

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Position of the Scanner's window start within its buffer. Offset is a byte
// offset, always on a code point boundary.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (p *Position) advance(s string) {
	p.Offset += len(s)
	for _, r := range s {
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
}

// A Scanner segments a buffer of text into tokens by growing a candidate
// window one code point at a time and asking its rule tree to classify it.
// Tokens are emitted as a left-to-right, contiguous, non-overlapping
// partition of the scanned input.
//
// A Scanner holds the only mutable state in the system and is not safe for
// concurrent use, though any number of Scanners may share one rule tree.
type Scanner[T any] struct {
	rule   Rule[T]
	buffer string
	start  int
	end    int
	pos    Position
	trace  io.Writer
}

// New creates a Scanner over an empty buffer. Bind text with Reset.
func New[T any](rule Rule[T], options ...Option[T]) *Scanner[T] {
	s := &Scanner[T]{rule: rule, pos: Position{Line: 1, Column: 1}}
	for _, option := range options {
		option(s)
	}
	return s
}

// WithBuffer creates a Scanner bound to text.
func WithBuffer[T any](rule Rule[T], text string, options ...Option[T]) *Scanner[T] {
	s := New(rule, options...)
	s.buffer = text
	return s
}

// Reset rebinds the Scanner to a new buffer and resets the window to the
// start. The rule tree is retained.
func (s *Scanner[T]) Reset(text string) {
	s.buffer = text
	s.start = 0
	s.end = 0
	s.pos = Position{Filename: s.pos.Filename, Line: 1, Column: 1}
}

// Pos returns the position of the current window start, which after a
// successful Step is the position of the next lexeme.
func (s *Scanner[T]) Pos() Position { return s.pos }

// Step grows the window by one code point and classifies it against the rule
// tree.
//
// A full match consumes the window: ok reports whether the match extracted a
// token. No match and partial match both come back as (zero, false, nil),
// meaning "no token yet"; the next call re-evaluates a window one code point
// longer. Once the window cannot grow past the end of the buffer, Step
// returns ErrEndOfInput, or an *UnrecognizedTokenError if unconsumed text
// remains.
func (s *Scanner[T]) Step() (token T, ok bool, err error) {
	var zero T
	if s.end >= len(s.buffer) {
		if s.start < len(s.buffer) {
			return zero, false, &UnrecognizedTokenError{Text: s.buffer[s.start:], Pos: s.pos}
		}
		return zero, false, ErrEndOfInput
	}
	_, width := utf8.DecodeRuneInString(s.buffer[s.end:])
	s.end += width
	window := s.buffer[s.start:s.end]
	m := s.rule.Matches(window)
	if s.trace != nil {
		fmt.Fprintf(s.trace, "%s: %q %s\n", s.pos, window, m)
	}
	if !m.IsMatch() {
		return zero, false, nil
	}
	s.pos.advance(window)
	s.start = s.end
	token, ok = m.Value()
	return token, ok, nil
}

// Next drives Step until the next extracted token. Matches carrying no value,
// such as ignored whitespace, are consumed silently along the way.
func (s *Scanner[T]) Next() (T, error) {
	for {
		token, ok, err := s.Step()
		if err != nil || ok {
			return token, err
		}
	}
}

// ScanAll reads every remaining token from s. Clean exhaustion of the buffer
// is not an error; trailing input that no rule recognizes is, and the tokens
// scanned before it are still returned.
func ScanAll[T any](s *Scanner[T]) ([]T, error) {
	var tokens []T
	for {
		token, err := s.Next()
		if errors.Is(err, ErrEndOfInput) {
			return tokens, nil
		} else if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}
}
