// Package mesh serializes generated tilings as Wavefront OBJ text and provides
// sink adapters (statistics, triangulation, fan-out) that sit in front of it.
package mesh

import (
	"bufio"
	"io"
	"strconv"
)

// Writer streams vertex and face records to an io.Writer:
//
//	v <x> <y> <z>
//	f <i1> <i2> ... <ik>
//
// Records go through a fixed-size buffer, never the whole mesh. The first
// error from the underlying writer is sticky: every later call returns it.
type Writer struct {
	w   *bufio.Writer
	buf []byte
	err error

	vertices int
	faces    int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), buf: make([]byte, 0, 64)}
}

// Vertex writes a vertex record.
func (w *Writer) Vertex(x, y, z float32) error {
	if w.err != nil {
		return w.err
	}
	b := append(w.buf[:0], 'v', ' ')
	b = appendCoord(b, x)
	b = append(b, ' ')
	b = appendCoord(b, y)
	b = append(b, ' ')
	if z == 0 {
		b = append(b, "0.0"...)
	} else {
		b = appendCoord(b, z)
	}
	b = append(b, '\n')
	w.buf = b
	if _, w.err = w.w.Write(b); w.err == nil {
		w.vertices++
	}
	return w.err
}

// Face writes a face record of 1-based vertex references.
func (w *Writer) Face(refs ...int) error {
	if w.err != nil {
		return w.err
	}
	b := append(w.buf[:0], 'f')
	for _, r := range refs {
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(r), 10)
	}
	b = append(b, '\n')
	w.buf = b
	if _, w.err = w.w.Write(b); w.err == nil {
		w.faces++
	}
	return w.err
}

// Flush writes any buffered records to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// Vertices returns the number of vertex records written.
func (w *Writer) Vertices() int { return w.vertices }

// Faces returns the number of face records written.
func (w *Writer) Faces() int { return w.faces }

// appendCoord formats like a default-configured C++ output stream: %g with six
// significant digits, so 0.8660254 becomes "0.866025" and 3.0 becomes "3".
func appendCoord(b []byte, v float32) []byte {
	return strconv.AppendFloat(b, float64(v), 'g', 6, 32)
}
