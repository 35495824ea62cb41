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

import "github.com/NishiOwO/86Box/logger"

// number of active phases the vertical retrace status bit remains set
const vsyncLength = 16

// the smallest frame size negotiated with the presentation. dimensions below
// the threshold are replaced by the default
const (
	minWidth      = 64
	minHeight     = 32
	defaultWidth  = 656
	defaultHeight = 200
)

// Tick implements the scheduler.TickHandler interface. Each call processes one
// phase of the scanline and returns the virtual time of the next call.
func (m *MDA) Tick() int64 {
	switch m.phase {
	case BlankPhase:
		m.blankPhase()
	case ActivePhase:
		m.activePhase()
	}
	return m.clock
}

func (m *MDA) blankPhase() {
	m.clock += m.blankDuration
	m.stat |= StatusHRetrace
	m.phase = ActivePhase

	scanline := m.scanline
	if m.doubleScan() {
		m.scanline = (m.scanline << 1) & 0x07
	}

	if m.displayEnabled {
		if m.displayLine < m.firstLine {
			m.firstLine = m.displayLine
		}
		m.lastLine = m.displayLine
		m.drawScanline()
	}

	m.scanline = scanline

	if m.row == int(m.crtc[RegVertSyncPos]) && m.scanline == 0 {
		m.stat |= StatusVRetrace
	}

	m.displayLine++
	if m.displayLine >= MaxDisplayLines {
		m.displayLine = 0
	}
}

// matchScanline is true if the scanline counter equals the register value. in
// double scan mode the halved value also matches
func (m *MDA) matchScanline(reg uint8) bool {
	return m.scanline == int(reg) || (m.doubleScan() && m.scanline == int(reg>>1))
}

func (m *MDA) activePhase() {
	m.clock += m.activeDuration
	if m.displayEnabled {
		m.stat &^= StatusHRetrace
	}
	m.phase = BlankPhase

	if m.vsync > 0 {
		m.vsync--
		if m.vsync == 0 {
			m.stat &^= StatusVRetrace
		}
	}

	if m.matchScanline(m.crtc[RegCursorEnd] & 0x1f) {
		m.cursorWindow = false
	}

	if m.vadj > 0 {
		m.scanline = (m.scanline + 1) & 0x1f
		m.ma = m.maBack
		m.vadj--
		if m.vadj == 0 {
			m.startFrame()
		}
	} else if m.matchScanline(m.crtc[RegMaxScanline]) {
		m.endRow()
	} else {
		m.scanline = (m.scanline + 1) & 0x1f
		m.ma = m.maBack
	}

	if m.matchScanline(m.crtc[RegCursorStart] & 0x1f) {
		m.cursorWindow = true
	}
}

// display is enabled at the start address. called at the end of the vertical
// total adjustment or immediately if there is no adjustment
func (m *MDA) startFrame() {
	m.displayEnabled = true
	m.ma = m.startAddress()
	m.maBack = m.ma
	m.scanline = 0
}

func (m *MDA) endRow() {
	m.maBack = m.ma
	m.scanline = 0

	prev := m.row
	m.row = (m.row + 1) & 0x7f

	if m.row == int(m.crtc[RegVertDisplayed]) {
		m.displayEnabled = false
	}

	if prev == int(m.crtc[RegVertTotal]) {
		m.row = 0
		m.vadj = int(m.crtc[RegVertTotalAdjust])
		if m.vadj == 0 {
			m.startFrame()
		}

		if m.crtc[RegCursorStart]&0x60 == 0x20 {
			m.cursorOn = false
		} else {
			m.cursorOn = m.blink&0x10 == 0x10
		}
	}

	if m.row == int(m.crtc[RegVertSyncPos]) {
		m.vsyncStart()
	}
}

func (m *MDA) vsyncStart() {
	m.displayEnabled = false
	m.displayLine = 0
	m.vsync = vsyncLength

	if m.crtc[RegVertSyncPos] != 0 {
		width := int(m.crtc[RegHorizDisplayed]) * CellWidth
		m.lastLine++
		height := m.lastLine - m.firstLine

		if width != m.width || height != m.height || m.pres.ForceResize() {
			m.width = width
			m.height = height
			w, h := clampSize(width, height)
			m.pres.NegotiateSize(w, h)
			logger.Logf(logger.Allow, "mda", "output size %dx%d", w, h)
		}

		_, height = clampSize(width, height)
		m.pres.PresentFrame(m.firstLine, height)
		m.frames++
		m.pres.SetResolution(int(m.crtc[RegHorizDisplayed]), int(m.crtc[RegVertDisplayed]))
	}

	m.firstLine = noFirstLine
	m.lastLine = 0
	m.blink++
}

func clampSize(width, height int) (int, int) {
	if width < minWidth {
		width = defaultWidth
	}
	if height < minHeight {
		height = defaultHeight
	}
	return width, height
}
