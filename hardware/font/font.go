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

// Package font provides the character generator for the MDA. A Font maps a
// character code and a glyph row to an 8 bit pixel mask, with bit 7 being the
// leftmost pixel.
//
// A Font can be loaded from a dump of the MDA character ROM with LoadROM() or
// generated with Builtin().
package font

// Height is the number of rows in a glyph. The character generator is
// addressed with the low four bits of the scanline counter.
const Height = 16

// Glyphs is the number of characters in a font.
const Glyphs = 256

// Font is the character generator table.
type Font [Glyphs][Height]uint8

// Row returns the pixel mask for the character at the specified row. Only the
// low four bits of row are used.
func (f *Font) Row(char uint8, row int) uint8 {
	return f[char][row&(Height-1)]
}
