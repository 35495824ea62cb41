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

package font

import (
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// the built-in font is drawn for a cell of 14 rows, the height of the
// standard 80x25 mode
const cellHeight = 14

// baseline of the printable characters. leaves row 12 free for the underline
const baseline = 11

// line positions for the box drawing characters
const (
	vertical     = 3
	horizontal   = 6
	doubleOffset = 1
)

// segments of a box drawing character: up, down, left, right. a value of 1 is
// a single line and 2 a double line
type segments [4]uint8

var boxDrawing = map[uint8]segments{
	0xb3: {1, 1, 0, 0}, 0xb4: {1, 1, 1, 0}, 0xb5: {1, 1, 2, 0}, 0xb6: {2, 2, 1, 0},
	0xb7: {0, 2, 1, 0}, 0xb8: {0, 1, 2, 0}, 0xb9: {2, 2, 2, 0}, 0xba: {2, 2, 0, 0},
	0xbb: {0, 2, 2, 0}, 0xbc: {2, 0, 2, 0}, 0xbd: {2, 0, 1, 0}, 0xbe: {1, 0, 2, 0},
	0xbf: {0, 1, 1, 0}, 0xc0: {1, 0, 0, 1}, 0xc1: {1, 0, 1, 1}, 0xc2: {0, 1, 1, 1},
	0xc3: {1, 1, 0, 1}, 0xc4: {0, 0, 1, 1}, 0xc5: {1, 1, 1, 1}, 0xc6: {1, 1, 0, 2},
	0xc7: {2, 2, 0, 1}, 0xc8: {2, 0, 0, 2}, 0xc9: {0, 2, 0, 2}, 0xca: {2, 0, 2, 2},
	0xcb: {0, 2, 2, 2}, 0xcc: {2, 2, 0, 2}, 0xcd: {0, 0, 2, 2}, 0xce: {2, 2, 2, 2},
	0xcf: {1, 0, 2, 2}, 0xd0: {2, 0, 1, 1}, 0xd1: {0, 1, 2, 2}, 0xd2: {0, 2, 1, 1},
	0xd3: {2, 0, 0, 1}, 0xd4: {1, 0, 0, 2}, 0xd5: {0, 1, 0, 2}, 0xd6: {0, 2, 0, 1},
	0xd7: {2, 2, 1, 1}, 0xd8: {1, 1, 2, 2}, 0xd9: {1, 0, 1, 0}, 0xda: {0, 1, 0, 1},
}

// Builtin returns a font generated from the basic font in the x/image
// package. Printable ASCII characters, the shade and block characters and the
// box drawing characters are present. Other characters are blank.
func Builtin() *Font {
	var f Font

	dst := image.NewAlpha(image.Rect(0, 0, 8, Height))
	d := xfont.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: basicfont.Face7x13,
	}

	for c := 0x21; c < 0x7f; c++ {
		clear(dst.Pix)
		d.Dot = fixed.P(0, baseline)
		d.DrawString(string(rune(c)))
		for y := range Height {
			for x := range 8 {
				if dst.AlphaAt(x, y).A >= 0x80 {
					f[c][y] |= 0x80 >> x
				}
			}
		}
	}

	// light, medium and dark shade
	shades := [3][2]uint8{{0x88, 0x22}, {0xaa, 0x55}, {0xee, 0xbb}}
	for i, s := range shades {
		for y := range cellHeight {
			f[0xb0+i][y] = s[y&1]
		}
	}

	for c, s := range boxDrawing {
		f[c] = s.glyph()
	}

	// full block, lower half, left half, right half, upper half
	for y := range cellHeight {
		f[0xdb][y] = 0xff
		f[0xdd][y] = 0xf0
		f[0xde][y] = 0x0f
		if y < cellHeight/2 {
			f[0xdf][y] = 0xff
		} else {
			f[0xdc][y] = 0xff
		}
	}

	return &f
}

// lines returns the positions of a single or double line centred on p
func lines(weight uint8, p int) []int {
	switch weight {
	case 1:
		return []int{p}
	case 2:
		return []int{p - doubleOffset, p + doubleOffset}
	}
	return nil
}

func (s segments) glyph() [Height]uint8 {
	var g [Height]uint8

	// vertical lines run to the lowest horizontal line and horizontal lines
	// run to the rightmost vertical line so that corners join
	vEnd := horizontal + doubleOffset
	hEnd := vertical + doubleOffset

	for _, x := range lines(s[0], vertical) {
		for y := 0; y <= vEnd; y++ {
			g[y] |= 0x80 >> x
		}
	}
	for _, x := range lines(s[1], vertical) {
		for y := horizontal - doubleOffset; y < cellHeight; y++ {
			g[y] |= 0x80 >> x
		}
	}
	for _, y := range lines(s[2], horizontal) {
		for x := 0; x <= hEnd; x++ {
			g[y] |= 0x80 >> x
		}
	}
	for _, y := range lines(s[3], horizontal) {
		for x := vertical - doubleOffset; x < 8; x++ {
			g[y] |= 0x80 >> x
		}
	}

	return g
}
