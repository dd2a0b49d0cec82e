package mile

import "io"

// An Option modifies how a Scanner works.
type Option[T any] func(s *Scanner[T])

// Trace writes one line per Step to w, showing the window's position,
// contents and classification. Tracing has no effect on matching.
func Trace[T any](w io.Writer) Option[T] {
	return func(s *Scanner[T]) { s.trace = w }
}

// Filename sets the filename reported in positions and errors.
func Filename[T any](name string) Option[T] {
	return func(s *Scanner[T]) { s.pos.Filename = name }
}
