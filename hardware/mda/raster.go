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

// the scanline of the character cell that shows the underline
const underlineScanline = 12

// character codes with the ninth dot extended from the eighth
const (
	lineGraphicsMask = 0xe0
	lineGraphics     = 0xc0
)

// drawScanline renders the current scanline of the character row into the
// display line.
func (m *MDA) drawScanline() {
	line := m.pres.Scanline(m.displayLine)
	cursor := m.cursorAddress()

	var cell [CellWidth]uint8

	for x := range int(m.crtc[RegHorizDisplayed]) {
		chr := m.vram[(m.ma<<1)&(VRAMSize-1)]
		attr := m.vram[((m.ma<<1)+1)&(VRAMSize-1)]

		drawCursor := m.ma == cursor && m.cursorWindow && m.cursorOn
		blink := m.blink&0x10 == 0x10 && m.ctrl&CtrlBlink == CtrlBlink && attr&0x80 == 0x80 && !drawCursor

		if m.scanline == underlineScanline && attr&0x07 == 0x01 {
			ul := Resolve(attr, blink, true)
			for c := range cell {
				cell[c] = ul
			}
		} else {
			dots := m.font.Row(chr, m.scanline)
			for c := range 8 {
				cell[c] = Resolve(attr, blink, dots&(0x80>>c) != 0)
			}
			if chr&lineGraphicsMask == lineGraphics {
				cell[8] = Resolve(attr, blink, dots&0x01 != 0)
			} else {
				cell[8] = Resolve(attr, blink, false)
			}
		}

		m.ma = (m.ma + 1) & addressMask

		if drawCursor {
			inv := Resolve(attr, false, true)
			for c := range cell {
				cell[c] ^= inv
			}
		}

		// the line buffer may be shorter than the horizontal displayed
		// register allows for
		p := x * CellWidth
		if p >= len(line) {
			continue
		}
		copy(line[p:], cell[:])
	}
}
