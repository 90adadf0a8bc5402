package logger

import "io"

// NewWithWriter exposes the writer-based constructor for testing.
func NewWithWriter(w io.Writer) *Logger {
	return newLogger(w)
}
