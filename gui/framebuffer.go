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

package gui

import (
	"image"
	"sync"
)

// FrameBuffer holds the most recent frame. Frames are written on the
// emulation goroutine and read on the main thread.
type FrameBuffer struct {
	crit sync.Mutex

	img   *image.RGBA
	dirty bool

	// incremented whenever the size of the frame changes
	generation int
}

// NewFrameBuffer is the preferred method of initialisation for the
// FrameBuffer type.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		img: image.NewRGBA(image.Rect(0, 0, 0, 0)),
	}
}

// Resize the frame buffer. The contents are cleared.
func (fb *FrameBuffer) Resize(width, height int) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.img = image.NewRGBA(image.Rect(0, 0, width, height))
	fb.generation++
	fb.dirty = true
}

// Write a copy of the frame into the frame buffer. A frame of a different
// size to the frame buffer resizes the frame buffer.
func (fb *FrameBuffer) Write(img *image.RGBA) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	if img.Bounds().Size() != fb.img.Bounds().Size() {
		fb.img = image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
		fb.generation++
	}
	copy(fb.img.Pix, img.Pix)
	fb.dirty = true
}

// Read calls the function with the frame if it has changed since the previous
// call to Read(). The image must not be retained after f returns. Returns
// true if f was called.
func (fb *FrameBuffer) Read(f func(img *image.RGBA, generation int)) bool {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	if !fb.dirty {
		return false
	}
	fb.dirty = false
	f(fb.img, fb.generation)
	return true
}

// Size returns the size of the frame.
func (fb *FrameBuffer) Size() (int, int) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	return fb.img.Bounds().Dx(), fb.img.Bounds().Dy()
}
