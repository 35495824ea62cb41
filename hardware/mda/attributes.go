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

package mda

// Palette indices produced by the adapter. The display maps these to colours
// according to the selected display scheme.
const (
	Dim    = 16
	Normal = 16 + 7
	Bright = 16 + 15
)

// attributes is indexed by attribute byte, blink override and foreground.
type attributeTable [256][2][2]uint8

var attributes = buildAttributes()

func buildAttributes() attributeTable {
	var t attributeTable

	for c := range 256 {
		t[c][0][0] = Dim
		t[c][1][0] = Dim
		t[c][1][1] = Dim
		if c&0x08 == 0x08 {
			t[c][0][1] = Bright
		} else {
			t[c][0][1] = Normal
		}
	}

	// reverse video
	t[0x70][0][1] = Dim
	t[0x70][0][0] = Bright
	t[0x70][1][0] = Bright
	t[0x70][1][1] = Bright
	t[0xf0] = t[0x70]

	t[0x78][0][1] = Normal
	t[0x78][0][0] = Bright
	t[0x78][1][0] = Bright
	t[0x78][1][1] = Bright
	t[0xf8] = t[0x78]

	// invisible
	for _, c := range []int{0x00, 0x08, 0x80, 0x88} {
		t[c][0][1] = Dim
		t[c][1][1] = Dim
	}

	return t
}

// Resolve returns the palette index for a dot drawn with the attribute. The
// blink argument selects the blink override column of the attribute table and
// fg selects between the foreground and background of the cell.
func Resolve(attr uint8, blink bool, fg bool) uint8 {
	return attributes[attr][b2i(blink)][b2i(fg)]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
