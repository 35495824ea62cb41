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

// I/O ports claimed by the adapter.
const (
	PortFirst   = 0x3b0
	PortLast    = 0x3bb
	PortControl = 0x3b8
	PortStatus  = 0x3ba
)

// CRTC register numbers.
const (
	RegHorizTotal      = 0
	RegHorizDisplayed  = 1
	RegHorizSyncPos    = 2
	RegSyncWidth       = 3
	RegVertTotal       = 4
	RegVertTotalAdjust = 5
	RegVertDisplayed   = 6
	RegVertSyncPos     = 7
	RegInterlace       = 8
	RegMaxScanline     = 9
	RegCursorStart     = 10
	RegCursorEnd       = 11
	RegStartHigh       = 12
	RegStartLow        = 13
	RegCursorHigh      = 14
	RegCursorLow       = 15
)

// Bits in the mode control register.
const (
	CtrlHighRes = 0x01
	CtrlEnable  = 0x08
	CtrlBlink   = 0x20
)

// Bits in the status register.
const (
	StatusHRetrace = 0x01
	StatusVRetrace = 0x08
)

// unused bits of the status register read as one
const statusUnused = 0xf0

// Out implements the bus.IODevice interface.
func (m *MDA) Out(port uint16, data uint8) {
	switch port {
	case 0x3b0, 0x3b2, 0x3b4, 0x3b6:
		m.crtcIndex = data & 0x1f
	case 0x3b1, 0x3b3, 0x3b5, 0x3b7:
		m.crtc[m.crtcIndex] = data
		m.cursorCompatibility()
		m.recalcTimings()
	case PortControl:
		m.ctrl = data
	}
}

// In implements the bus.IODevice interface.
func (m *MDA) In(port uint16) uint8 {
	switch port {
	case 0x3b0, 0x3b2, 0x3b4, 0x3b6:
		return m.crtcIndex
	case 0x3b1, 0x3b3, 0x3b5, 0x3b7:
		return m.crtc[m.crtcIndex]
	case PortStatus:
		return m.stat | statusUnused
	}
	return 0xff
}

// software written for the CGA sets the cursor to scanlines 6 and 7. on the
// MDA that would place the cursor in the middle of the cell so the shape is
// moved to the bottom of the 14 line cell
func (m *MDA) cursorCompatibility() {
	if m.crtc[RegCursorStart] == 6 && m.crtc[RegCursorEnd] == 7 {
		m.crtc[RegCursorStart] = 0x0b
		m.crtc[RegCursorEnd] = 0x0c
		logger.Log(logger.Allow, "mda", "cga cursor shape converted")
	}
}

// Registers returns a copy of the CRTC register bank.
func (m *MDA) Registers() [32]uint8 {
	return m.crtc
}

// Register returns the value of a single CRTC register. Only the low five bits
// of the register number are used.
func (m *MDA) Register(reg int) uint8 {
	return m.crtc[reg&0x1f]
}

// Index returns the currently selected CRTC register.
func (m *MDA) Index() uint8 {
	return m.crtcIndex
}

// Control returns the value of the mode control register.
func (m *MDA) Control() uint8 {
	return m.ctrl
}

// Status returns the value of the status register as seen by the CPU.
func (m *MDA) Status() uint8 {
	return m.stat | statusUnused
}

func (m *MDA) startAddress() uint16 {
	return (uint16(m.crtc[RegStartLow]) | uint16(m.crtc[RegStartHigh])<<8) & addressMask
}

func (m *MDA) cursorAddress() uint16 {
	return (uint16(m.crtc[RegCursorLow]) | uint16(m.crtc[RegCursorHigh])<<8) & addressMask
}

func (m *MDA) doubleScan() bool {
	return m.crtc[RegInterlace]&0x03 == 0x03
}
