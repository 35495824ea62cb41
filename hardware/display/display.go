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

package display

import (
	"fmt"
	"image"
	"strings"
	"sync/atomic"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/hardware/display/limiter"
	"github.com/NishiOwO/86Box/hardware/mda"
	"github.com/NishiOwO/86Box/logger"
)

// FrameRenderer implementations show, or otherwise work with, the frames
// produced by the display. For example digest.Video.
type FrameRenderer interface {
	// Resize is called when the size of the frame changes and when the
	// renderer is added to a display that has already negotiated a size.
	Resize(width, height int) error

	// NewFrame is called for every presented frame. The image is reused by
	// the display and must not be retained after NewFrame returns.
	NewFrame(frameNum int, img *image.RGBA) error

	// some renderers may need to dispose of resources gently. the renderer
	// should be considered unusable after EndRendering() has been called
	EndRendering() error
}

// Sentinal error patterns.
const (
	RendererError = "display: %v"
)

// Display is the presentation for the adapter.
type Display struct {
	lines [][]uint8

	forceResize bool
	width       int
	height      int
	columns     int
	rows        int
	frameNum    int

	scheme  atomic.Value // string
	palette atomic.Pointer[Palette]

	img       *image.RGBA
	renderers []FrameRenderer

	// the first error returned by a renderer
	err error

	lmtr *limiter.Limiter
}

var _ mda.Presentation = (*Display)(nil)

// NewDisplay is the preferred method of initialisation for the Display type.
// The FPS cap is disabled.
func NewDisplay(scheme string) *Display {
	dsp := &Display{
		lines: make([][]uint8, mda.MaxDisplayLines),
		lmtr:  limiter.NewLimiter(),
		img:   image.NewRGBA(image.Rect(0, 0, 0, 0)),
	}
	for i := range dsp.lines {
		dsp.lines[i] = make([]uint8, mda.MaxWidth)
	}
	dsp.lmtr.Active.Store(false)
	dsp.SetScheme(scheme)
	return dsp
}

func (dsp *Display) String() string {
	return fmt.Sprintf("frame=%d size=%dx%d text=%dx%d scheme=%s", dsp.frameNum,
		dsp.width, dsp.height, dsp.columns, dsp.rows, dsp.Scheme())
}

// AddFrameRenderer adds a renderer to the display.
func (dsp *Display) AddFrameRenderer(r FrameRenderer) {
	dsp.renderers = append(dsp.renderers, r)
	if dsp.width > 0 && dsp.height > 0 {
		dsp.record(r.Resize(dsp.width, dsp.height))
	}
}

// RemoveFrameRenderer removes a renderer from the display. EndRendering() is
// not called.
func (dsp *Display) RemoveFrameRenderer(r FrameRenderer) {
	for i := range dsp.renderers {
		if dsp.renderers[i] == r {
			dsp.renderers = append(dsp.renderers[:i], dsp.renderers[i+1:]...)
			return
		}
	}
}

func (dsp *Display) record(err error) {
	if err != nil && dsp.err == nil {
		dsp.err = curated.Errorf(RendererError, err)
		logger.Log(logger.Allow, "display", dsp.err)
	}
}

// Err returns the first error returned by a renderer.
func (dsp *Display) Err() error {
	return dsp.err
}

// SetScheme changes the display scheme. An unrecognised scheme selects
// SchemeDefault. Safe to call from any goroutine.
func (dsp *Display) SetScheme(scheme string) {
	scheme = strings.ToLower(scheme)
	if _, ok := phosphors[scheme]; !ok {
		if scheme != "" {
			logger.Logf(logger.Allow, "display", "unknown scheme (%s) using %s", scheme, SchemeDefault)
		}
		scheme = SchemeDefault
	}
	p := NewPalette(scheme)
	dsp.palette.Store(&p)
	dsp.scheme.Store(scheme)
}

// Scheme returns the name of the current display scheme.
func (dsp *Display) Scheme() string {
	return dsp.scheme.Load().(string)
}

// Palette returns the palette of the current display scheme.
func (dsp *Display) Palette() Palette {
	return *dsp.palette.Load()
}

// Scanline implements the mda.Presentation interface.
func (dsp *Display) Scanline(line int) []uint8 {
	return dsp.lines[line]
}

// ForceResize implements the mda.Presentation interface.
func (dsp *Display) ForceResize() bool {
	return dsp.forceResize
}

// RequestResize causes the size to be negotiated again with the next frame.
func (dsp *Display) RequestResize() {
	dsp.forceResize = true
}

// NegotiateSize implements the mda.Presentation interface.
func (dsp *Display) NegotiateSize(width, height int) {
	dsp.forceResize = false
	dsp.width = width
	dsp.height = height
	dsp.img = image.NewRGBA(image.Rect(0, 0, width, height))
	for _, r := range dsp.renderers {
		dsp.record(r.Resize(width, height))
	}
}

// PresentFrame implements the mda.Presentation interface.
func (dsp *Display) PresentFrame(startLine, lineCount int) {
	dsp.frameNum++

	pal := dsp.palette.Load()
	bounds := dsp.img.Bounds()
	width := min(bounds.Dx(), mda.MaxWidth)

	for y := range min(lineCount, bounds.Dy()) {
		row := dsp.img.Pix[y*dsp.img.Stride:]

		line := startLine + y
		if line < 0 || line >= len(dsp.lines) {
			for x := range bounds.Dx() {
				copy(row[x*4:], []uint8{pal[0].R, pal[0].G, pal[0].B, pal[0].A})
			}
			continue
		}

		for x, v := range dsp.lines[line][:width] {
			c := pal[v&(PaletteSize-1)]
			row[x*4] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}

	for _, r := range dsp.renderers {
		dsp.record(r.NewFrame(dsp.frameNum, dsp.img))
	}

	dsp.lmtr.CheckFrame()
	dsp.lmtr.MeasureActual()
}

// SetResolution implements the mda.Presentation interface.
func (dsp *Display) SetResolution(columns, rows int) {
	dsp.columns = columns
	dsp.rows = rows
}

// Resolution returns the text resolution reported with the most recent frame.
func (dsp *Display) Resolution() (columns int, rows int) {
	return dsp.columns, dsp.rows
}

// Size returns the most recently negotiated size.
func (dsp *Display) Size() (width int, height int) {
	return dsp.width, dsp.height
}

// FrameNum returns the number of frames presented.
func (dsp *Display) FrameNum() int {
	return dsp.frameNum
}

// Image returns a copy of the most recent frame.
func (dsp *Display) Image() *image.RGBA {
	img := image.NewRGBA(dsp.img.Bounds())
	copy(img.Pix, dsp.img.Pix)
	return img
}

// SetFPSCap sets whether the presentation of a frame waits for the frame
// limiter.
func (dsp *Display) SetFPSCap(set bool) {
	dsp.lmtr.Active.Store(set)
}

// SetFPS requests the number of frames per second. A value of zero or less
// follows the refresh rate of the adapter.
func (dsp *Display) SetFPS(fps float32) {
	dsp.lmtr.SetLimit(fps)
}

// SetRefreshRate sets the refresh rate of the adapter.
func (dsp *Display) SetRefreshRate(hz float32) {
	dsp.lmtr.SetRefreshRate(hz)
}

// SetMonitor sets the host monitor used by the frame limiter.
func (dsp *Display) SetMonitor(monitor limiter.Monitor) {
	dsp.lmtr.SetMonitor(monitor)
}

// GetReqFPS returns the rate the frame limiter is trying to achieve.
func (dsp *Display) GetReqFPS() float32 {
	return dsp.lmtr.IdealFPS.Load().(float32)
}

// GetActualFPS returns the measured frame rate.
func (dsp *Display) GetActualFPS() float32 {
	return dsp.lmtr.Measured.Load().(float32)
}

// End calls EndRendering() on every renderer and stops the frame limiter. The
// display should not be used after End().
func (dsp *Display) End() error {
	var err error
	for _, r := range dsp.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = curated.Errorf(RendererError, e)
		}
	}
	dsp.renderers = nil
	dsp.lmtr.Stop()
	return err
}
