// This file is part of 86Box.
//
// 86Box is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// 86Box is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with 86Box.  If not, see <https://www.gnu.org/licenses/>.

package test

import "fmt"

// RingWriter is an io.Writer that remembers only the most recent bytes
// written to it. It is useful for tests that produce a lot of output but only
// care about how the output ends.
type RingWriter struct {
	buffer []byte
	next   int
	full   bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{buffer: make([]byte, size)}, nil
}

func (r *RingWriter) String() string {
	if !r.full {
		return string(r.buffer[:r.next])
	}
	return string(r.buffer[r.next:]) + string(r.buffer[:r.next])
}

// Reset empties the ring.
func (r *RingWriter) Reset() {
	r.next = 0
	r.full = false
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (int, error) {
	size := len(r.buffer)

	if len(p) >= size {
		copy(r.buffer, p[len(p)-size:])
		r.next = 0
		r.full = true
		return len(p), nil
	}

	n := copy(r.buffer[r.next:], p)
	if n < len(p) {
		copy(r.buffer, p[n:])
	}
	if r.next+len(p) >= size {
		r.full = true
	}
	r.next = (r.next + len(p)) % size

	return len(p), nil
}
