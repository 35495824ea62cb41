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

package display_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/go-test/deep"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/hardware/display"
	"github.com/NishiOwO/86Box/hardware/mda"
	"github.com/NishiOwO/86Box/test"
)

type renderer struct {
	sizes  [][2]int
	frames []int
	pixel  color.RGBA
	err    error
	ended  bool
}

func (r *renderer) Resize(width, height int) error {
	r.sizes = append(r.sizes, [2]int{width, height})
	return nil
}

func (r *renderer) NewFrame(frameNum int, img *image.RGBA) error {
	r.frames = append(r.frames, frameNum)
	r.pixel = img.RGBAAt(1, 1)
	return r.err
}

func (r *renderer) EndRendering() error {
	r.ended = true
	return nil
}

func TestPalette(t *testing.T) {
	p := display.NewPalette(display.SchemeDefault)
	test.ExpectEquality(t, p[mda.Dim], color.RGBA{A: 0xff})
	test.ExpectEquality(t, p[mda.Normal], color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff})
	test.ExpectEquality(t, p[mda.Bright], color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	// the lower half of the palette is used by the cursor
	test.ExpectEquality(t, p[mda.Dim^mda.Normal], p[mda.Normal])
	test.ExpectEquality(t, p[mda.Normal^mda.Normal], p[mda.Dim])

	// unknown schemes use the default palette
	if diff := deep.Equal(display.NewPalette("purple"), p); diff != nil {
		t.Error(diff)
	}

	g := display.NewPalette("GREEN")
	test.ExpectEquality(t, g[mda.Bright], color.RGBA{R: 0x33, G: 0xff, B: 0x66, A: 0xff})
	test.ExpectEquality(t, g[mda.Dim], color.RGBA{A: 0xff})
}

func TestPresentation(t *testing.T) {
	dsp := display.NewDisplay(display.SchemeAmber)
	defer dsp.End()

	r := &renderer{}
	dsp.AddFrameRenderer(r)
	test.ExpectEquality(t, len(r.sizes), 0)

	dsp.NegotiateSize(720, 350)
	test.ExpectFailure(t, dsp.ForceResize())
	w, h := dsp.Size()
	test.ExpectEquality(t, w, 720)
	test.ExpectEquality(t, h, 350)

	dsp.Scanline(21)[1] = mda.Bright
	dsp.PresentFrame(20, 350)
	dsp.SetResolution(80, 25)

	test.ExpectEquality(t, r.pixel, display.NewPalette(display.SchemeAmber)[mda.Bright])
	test.ExpectEquality(t, dsp.FrameNum(), 1)
	c, rows := dsp.Resolution()
	test.ExpectEquality(t, c, 80)
	test.ExpectEquality(t, rows, 25)

	// the scheme can be changed between frames
	dsp.SetScheme(display.SchemeGray)
	dsp.PresentFrame(20, 350)
	test.ExpectEquality(t, r.pixel, display.NewPalette(display.SchemeGray)[mda.Bright])
	test.ExpectEquality(t, dsp.Scheme(), display.SchemeGray)

	// lines outside of the buffer are black
	dsp.PresentFrame(1000, 200)
	test.ExpectEquality(t, r.pixel, color.RGBA{A: 0xff})

	// a renderer added later is told the current size
	late := &renderer{}
	dsp.AddFrameRenderer(late)
	if diff := deep.Equal(late.sizes, [][2]int{{720, 350}}); diff != nil {
		t.Error(diff)
	}

	if diff := deep.Equal(r.frames, []int{1, 2, 3}); diff != nil {
		t.Error(diff)
	}

	test.ExpectSuccess(t, dsp.End())
	test.ExpectSuccess(t, r.ended)
	test.ExpectSuccess(t, late.ended)
}

func TestForceResize(t *testing.T) {
	dsp := display.NewDisplay("")
	defer dsp.End()
	test.ExpectEquality(t, dsp.Scheme(), display.SchemeDefault)

	dsp.RequestResize()
	test.ExpectSuccess(t, dsp.ForceResize())
	dsp.NegotiateSize(720, 350)
	test.ExpectFailure(t, dsp.ForceResize())
}

func TestRendererError(t *testing.T) {
	dsp := display.NewDisplay(display.SchemeDefault)
	defer dsp.End()

	first := errors.New("first")
	r := &renderer{err: first}
	dsp.AddFrameRenderer(r)
	dsp.NegotiateSize(720, 350)

	test.ExpectSuccess(t, dsp.Err())
	dsp.PresentFrame(0, 350)
	r.err = errors.New("second")
	dsp.PresentFrame(0, 350)

	err := dsp.Err()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, display.RendererError))
	test.ExpectSuccess(t, errors.Is(err, first))
}

func TestImage(t *testing.T) {
	dsp := display.NewDisplay(display.SchemeDefault)
	defer dsp.End()

	dsp.NegotiateSize(720, 350)
	dsp.Scanline(0)[0] = mda.Normal
	dsp.PresentFrame(0, 350)

	img := dsp.Image()
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 720, 350))
	test.ExpectEquality(t, img.RGBAAt(0, 0), dsp.Palette()[mda.Normal])

	// the copy is not changed by the next frame
	dsp.Scanline(0)[0] = mda.Bright
	dsp.PresentFrame(0, 350)
	test.ExpectEquality(t, img.RGBAAt(0, 0), dsp.Palette()[mda.Normal])
}
