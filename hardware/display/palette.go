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
	"image/color"
	"strings"
)

// List of valid display schemes.
const (
	SchemeDefault = "default"
	SchemeGreen   = "green"
	SchemeAmber   = "amber"
	SchemeGray    = "gray"
)

// Schemes is the list of display schemes suitable for presentation to the
// user.
var Schemes = []string{SchemeDefault, SchemeGreen, SchemeAmber, SchemeGray}

// PaletteSize is the number of entries in a Palette. The MDA produces indices
// in the upper half of the palette. The cursor is drawn by inverting bits and
// produces indices in the lower half.
const PaletteSize = 32

// Palette maps palette indices to colours.
type Palette [PaletteSize]color.RGBA

// phosphor colour of each scheme at full intensity
var phosphors = map[string]color.RGBA{
	SchemeDefault: {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	SchemeGreen:   {R: 0x33, G: 0xff, B: 0x66, A: 0xff},
	SchemeAmber:   {R: 0xff, G: 0xb0, B: 0x00, A: 0xff},
	SchemeGray:    {R: 0xd8, G: 0xd8, B: 0xd8, A: 0xff},
}

// intensity of the sixteen levels. level 7 is normal text and level 15 is
// bright text. levels 8 and above are the brighter half of the range
func intensity(level int) int {
	if level < 8 {
		return level * 0xaa / 7
	}
	return 0x55 + (level-8)*(0xff-0x55)/7
}

// NewPalette creates the palette for the named scheme. The name is not case
// sensitive. An unrecognised name creates the palette for SchemeDefault.
func NewPalette(scheme string) Palette {
	ph, ok := phosphors[strings.ToLower(scheme)]
	if !ok {
		ph = phosphors[SchemeDefault]
	}

	var p Palette
	for i := range p {
		v := intensity(i & 0x0f)
		p[i] = color.RGBA{
			R: uint8(int(ph.R) * v / 0xff),
			G: uint8(int(ph.G) * v / 0xff),
			B: uint8(int(ph.B) * v / 0xff),
			A: 0xff,
		}
	}
	return p
}
