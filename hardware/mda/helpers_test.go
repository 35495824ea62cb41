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

package mda_test

import (
	"testing"

	"github.com/NishiOwO/86Box/hardware/bus"
	"github.com/NishiOwO/86Box/hardware/clocks"
	"github.com/NishiOwO/86Box/hardware/font"
	"github.com/NishiOwO/86Box/hardware/mda"
	"github.com/NishiOwO/86Box/hardware/scheduler"
	"github.com/NishiOwO/86Box/test"
)

type frame struct {
	start, count int
}

// sink is a Presentation that records every call made by the adapter
type sink struct {
	lines        [mda.MaxDisplayLines][mda.MaxWidth]uint8
	force        bool
	negotiations [][2]int
	frames       []frame
	columns      int
	rows         int
}

func (s *sink) Scanline(line int) []uint8 {
	return s.lines[line][:]
}

func (s *sink) ForceResize() bool {
	return s.force
}

func (s *sink) NegotiateSize(width, height int) {
	s.force = false
	s.negotiations = append(s.negotiations, [2]int{width, height})
}

func (s *sink) PresentFrame(startLine, lineCount int) {
	s.frames = append(s.frames, frame{start: startLine, count: lineCount})
}

func (s *sink) SetResolution(columns, rows int) {
	s.columns = columns
	s.rows = rows
}

// the font row of every character is the character code
func identityFont() *font.Font {
	var fnt font.Font
	for c := range font.Glyphs {
		for r := range font.Height {
			fnt[c][r] = uint8(c)
		}
	}
	return &fnt
}

type machine struct {
	adapter *mda.MDA
	sink    *sink
	bus     *bus.Bus
	sch     *scheduler.Scheduler
}

func newMachine(t *testing.T) *machine {
	t.Helper()
	return newMachineWithFont(t, identityFont())
}

func newMachineWithFont(t *testing.T, fnt *font.Font) *machine {
	t.Helper()

	m := &machine{
		sink: &sink{},
		bus:  bus.NewBus(),
		sch:  scheduler.NewScheduler(),
	}

	var err error
	m.adapter, err = mda.NewMDA(m.sink, fnt, clocks.XT)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.adapter.Install(m.bus, m.sch))

	return m
}

// the BIOS parameters for the 80x25 text mode
var mode80x25 = []uint8{0x61, 0x50, 0x52, 0x0f, 0x19, 0x06, 0x19, 0x19, 0x02, 0x0d, 0x0b, 0x0c, 0x00, 0x00, 0x00, 0x00}

// number of scanlines in a frame of the 80x25 mode
const linesPerFrame = 26*14 + 6

// the display line of the first visible scanline in the 80x25 mode
const firstVisible = 20

func (m *machine) setMode80x25() {
	for i, v := range mode80x25 {
		m.setRegister(i, v)
	}
	m.bus.Out(mda.PortControl, 0x29)
}

func (m *machine) setRegister(reg int, v uint8) {
	m.bus.Out(0x3b4, uint8(reg))
	m.bus.Out(0x3b5, v)
}

// runFrame runs the scheduler until the next frame is presented
func (m *machine) runFrame() {
	target := m.adapter.Frames() + 1
	m.sch.RunWhile(func() bool {
		return m.adapter.Frames() < target
	})
}

func (m *machine) runFrames(n int) {
	for range n {
		m.runFrame()
	}
}

// poke a character and attribute into the cell at the memory address
func (m *machine) poke(ma uint16, chr uint8, attr uint8) {
	m.bus.Write(mda.MemoryBase+uint32(ma)*2, chr)
	m.bus.Write(mda.MemoryBase+uint32(ma)*2+1, attr)
}

// cell returns the dots of a character cell in the display line
func (m *machine) cell(line int, x int) [mda.CellWidth]uint8 {
	var c [mda.CellWidth]uint8
	copy(c[:], m.sink.lines[line][x*mda.CellWidth:])
	return c
}

func solid(v uint8) [mda.CellWidth]uint8 {
	var c [mda.CellWidth]uint8
	for i := range c {
		c[i] = v
	}
	return c
}
