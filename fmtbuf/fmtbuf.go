// Package fmtbuf formats text into caller-provided fixed-size buffers.
//
// It is a small bridge between fmt and preallocated storage: formatting
// never grows the buffer, and output that does not fit fails with
// ErrBufferFull instead of truncating silently.
package fmtbuf

import (
	"errors"
	"fmt"
)

// ErrBufferFull is returned when formatted output does not fit into the
// remaining buffer space.
var ErrBufferFull = errors.New("buffer full")

// Writer is an io.Writer over a caller-provided fixed []byte. A write that
// would exceed the remaining space fails with ErrBufferFull and writes
// nothing.
type Writer struct {
	buf []byte
	n   int
}

// NewWriter wraps buf. The writer never allocates; all output lands in buf.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) > len(w.buf)-w.n {
		return 0, fmt.Errorf("%w: need %d bytes, %d free", ErrBufferFull, len(p), len(w.buf)-w.n)
	}

	n := copy(w.buf[w.n:], p)
	w.n += n

	return n, nil
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.n }

// Bytes returns the written prefix of the underlying buffer.
func (w *Writer) Bytes() []byte { return w.buf[:w.n] }

// String returns the written prefix as a string.
func (w *Writer) String() string { return string(w.buf[:w.n]) }

// Reset rewinds the writer so the buffer can be reused.
func (w *Writer) Reset() { w.n = 0 }

// Format writes the formatted arguments into buf and returns the number of
// bytes written. It fails with ErrBufferFull when the result does not fit;
// the buffer contents are unspecified after a failure because fmt may have
// flushed earlier fragments.
func Format(buf []byte, format string, args ...any) (int, error) {
	w := NewWriter(buf)
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return 0, err
	}

	return w.Len(), nil
}
