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

package screenshot_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/NishiOwO/86Box/screenshot"
	"github.com/NishiOwO/86Box/test"
)

func checkerboard() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := range 2 {
		for x := range 4 {
			if (x+y)&1 == 1 {
				img.SetRGBA(x, y, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			} else {
				img.SetRGBA(x, y, color.RGBA{A: 0xff})
			}
		}
	}
	return img
}

func TestWrite(t *testing.T) {
	src := checkerboard()

	var buf bytes.Buffer
	test.DemandSuccess(t, screenshot.Write(&buf, src, 2.0))

	img, err := png.Decode(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 8, 4))

	// every pixel is doubled
	for y := range 4 {
		for x := range 8 {
			r, _, _, _ := img.At(x, y).RGBA()
			sr, _, _, _ := src.At(x/2, y/2).RGBA()
			test.ExpectEquality(t, r, sr, x, y)
		}
	}
}

func TestInvalidScale(t *testing.T) {
	var buf bytes.Buffer
	test.ExpectFailure(t, screenshot.Write(&buf, checkerboard(), 0))
	test.ExpectEquality(t, buf.Len(), 0)
}

func TestSave(t *testing.T) {
	t.Chdir(t.TempDir())

	name, err := screenshot.Save(checkerboard(), 1.0)
	test.DemandSuccess(t, err)

	f, err := os.Open(name)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 4, 2))
}
