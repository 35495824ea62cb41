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

	"github.com/davecgh/go-spew/spew"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/hardware/bus"
	"github.com/NishiOwO/86Box/hardware/clocks"
	"github.com/NishiOwO/86Box/hardware/font"
	"github.com/NishiOwO/86Box/hardware/mda"
	"github.com/NishiOwO/86Box/hardware/scheduler"
	"github.com/NishiOwO/86Box/test"
)

func TestConstruction(t *testing.T) {
	_, err := mda.NewMDA(nil, font.Builtin(), clocks.XT)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, mda.ConstructionError))

	_, err = mda.NewMDA(&sink{}, nil, clocks.XT)
	test.ExpectFailure(t, err)

	_, err = mda.NewMDA(&sink{}, font.Builtin(), 0)
	test.ExpectFailure(t, err)

	m, err := mda.NewMDA(&sink{}, font.Builtin(), clocks.XT)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Phase(), mda.BlankPhase)
	test.ExpectEquality(t, m.Registers(), [32]uint8{})
}

func TestInstall(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.sch.Len(), 1)

	// the adapter cannot be installed twice
	test.ExpectFailure(t, m.adapter.Install(m.bus, m.sch))

	// a second adapter conflicts with the first
	other, err := mda.NewMDA(&sink{}, font.Builtin(), clocks.XT)
	test.DemandSuccess(t, err)
	err = other.Install(m.bus, m.sch)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, bus.PortConflict))
	test.ExpectEquality(t, m.sch.Len(), 1)

	// removing the adapter frees the ports and memory for the second adapter
	test.ExpectSuccess(t, m.adapter.Close())
	test.ExpectEquality(t, m.sch.Len(), 0)
	test.ExpectEquality(t, m.bus.In(mda.PortStatus), uint8(bus.Floating))
	test.ExpectSuccess(t, other.Install(m.bus, m.sch))
	test.ExpectEquality(t, m.sch.Len(), 1)
}

func TestRegisterRoundTrip(t *testing.T) {
	m := newMachine(t)

	for v := range 256 {
		reg := uint8(v) & 0x1f
		data := ^uint8(v)

		m.bus.Out(0x3b4, uint8(v))
		test.ExpectEquality(t, m.bus.In(0x3b4), reg, v)
		m.bus.Out(0x3b5, data)
		test.ExpectEquality(t, m.bus.In(0x3b5), data, v)
		test.ExpectEquality(t, m.adapter.Register(int(reg)), data, v)
	}
}

func TestRegisterMirrors(t *testing.T) {
	m := newMachine(t)

	// every even port in the CRTC range selects and every odd port accesses
	// the register file
	for _, p := range []uint16{0x3b0, 0x3b2, 0x3b4, 0x3b6} {
		m.bus.Out(p, 0x0e)
		m.bus.Out(p+1, uint8(p))
		for _, q := range []uint16{0x3b1, 0x3b3, 0x3b5, 0x3b7} {
			test.ExpectEquality(t, m.bus.In(q), uint8(p))
		}
	}
	test.ExpectEquality(t, m.adapter.Register(mda.RegCursorHigh), uint8(0xb6))
}

func TestCursorCompatibility(t *testing.T) {
	m := newMachine(t)
	m.setRegister(mda.RegCursorStart, 6)
	test.ExpectEquality(t, m.adapter.Register(mda.RegCursorStart), uint8(6))
	m.setRegister(mda.RegCursorEnd, 7)
	test.ExpectEquality(t, m.adapter.Register(mda.RegCursorStart), uint8(0x0b))
	test.ExpectEquality(t, m.adapter.Register(mda.RegCursorEnd), uint8(0x0c))

	// the order of the writes does not matter
	m = newMachine(t)
	m.setRegister(mda.RegCursorEnd, 7)
	m.setRegister(mda.RegCursorStart, 6)
	test.ExpectEquality(t, m.adapter.Register(mda.RegCursorStart), uint8(0x0b))
	test.ExpectEquality(t, m.adapter.Register(mda.RegCursorEnd), uint8(0x0c))

	// other cursor shapes are unchanged
	m.setRegister(mda.RegCursorStart, 6)
	m.setRegister(mda.RegCursorEnd, 8)
	test.ExpectEquality(t, m.adapter.Register(mda.RegCursorStart), uint8(6))
	test.ExpectEquality(t, m.adapter.Register(mda.RegCursorEnd), uint8(8))
}

func TestControlAndStatusPorts(t *testing.T) {
	m := newMachine(t)

	m.bus.Out(mda.PortControl, 0x29)
	test.ExpectEquality(t, m.adapter.Control(), uint8(0x29))

	// the control register is write only
	test.ExpectEquality(t, m.bus.In(mda.PortControl), uint8(0xff))

	// unused bits of the status register are set
	test.ExpectEquality(t, m.bus.In(mda.PortStatus)&0xf0, uint8(0xf0))

	// writes to unrecognised ports are ignored
	regs := m.adapter.Registers()
	m.bus.Out(0x3b9, 0x55)
	m.bus.Out(0x3bb, 0x55)
	test.ExpectEquality(t, m.adapter.Registers(), regs)
	test.ExpectEquality(t, m.adapter.Control(), uint8(0x29))
	test.ExpectEquality(t, m.bus.In(0x3b9), uint8(0xff))
	test.ExpectEquality(t, m.bus.In(0x3bb), uint8(0xff))

	// the parallel port range is not claimed
	m.bus.Out(0x3bc, 0x55)
	test.ExpectEquality(t, m.bus.In(0x3bc), uint8(bus.Floating))
}

func TestTiming(t *testing.T) {
	m := newMachine(t)
	m.setMode80x25()

	active, blank := m.adapter.Durations()
	test.ExpectEquality(t, active, clocks.CharacterDuration(80, clocks.XT))
	test.ExpectEquality(t, blank, clocks.CharacterDuration(18, clocks.XT))

	m.adapter.SetCPUClock(clocks.AT8)
	active, blank = m.adapter.Durations()
	test.ExpectEquality(t, active, clocks.CharacterDuration(80, clocks.AT8))
	test.ExpectEquality(t, blank, clocks.CharacterDuration(18, clocks.AT8))

	// invalid clocks are ignored
	m.adapter.SetCPUClock(-1)
	active, _ = m.adapter.Durations()
	test.ExpectEquality(t, active, clocks.CharacterDuration(80, clocks.AT8))

	// horizontal displayed larger than the horizontal total
	m.setRegister(mda.RegHorizTotal, 10)
	m.setRegister(mda.RegHorizDisplayed, 20)
	active, blank = m.adapter.Durations()
	test.ExpectEquality(t, active, clocks.CharacterDuration(20, clocks.AT8))
	test.ExpectEquality(t, blank, int64(0))

	// the clock never runs backwards
	clock := m.adapter.Clock()
	for i := range 100 {
		next := m.adapter.Tick()
		test.ExpectSuccess(t, next >= clock, i)
		clock = next
	}
}

func TestMemoryWindow(t *testing.T) {
	m := newMachine(t)

	m.bus.Write(mda.MemoryBase+5, 0xaa)
	test.ExpectEquality(t, m.adapter.Peek(5), uint8(0xaa))

	// video memory repeats throughout the window
	for base := uint32(mda.MemoryBase); base < mda.MemoryBase+mda.MemoryWindow; base += mda.VRAMSize {
		test.ExpectEquality(t, m.bus.Read(base+5), uint8(0xaa), base)
	}
	m.bus.Write(mda.MemoryBase+mda.MemoryWindow-1, 0x55)
	test.ExpectEquality(t, m.adapter.Peek(mda.VRAMSize-1), uint8(0x55))

	// outside of the window
	test.ExpectEquality(t, m.bus.Read(mda.MemoryBase+mda.MemoryWindow+5), uint8(bus.Floating))

	reads, writes := m.adapter.MemoryAccesses()
	test.ExpectEquality(t, reads, uint64(mda.MemoryWindow/mda.VRAMSize))
	test.ExpectEquality(t, writes, uint64(2))

	// peek and poke are not counted
	m.adapter.Poke(6, 1)
	_ = m.adapter.Peek(6)
	r, w := m.adapter.MemoryAccesses()
	test.ExpectEquality(t, r, reads)
	test.ExpectEquality(t, w, writes)
}

func TestTextPage(t *testing.T) {
	m := newMachine(t)
	m.setMode80x25()

	for i, c := range []byte("HELLO") {
		m.poke(uint16(i), c, 0x07)
	}
	m.poke(80+2, 'X', 0x07)
	m.poke(80+3, 0x01, 0x07)

	page := m.adapter.TextPage()
	test.DemandEquality(t, len(page), 25)
	test.ExpectEquality(t, page[0], "HELLO")
	test.ExpectEquality(t, page[1], "  X")
	test.ExpectEquality(t, page[2], "")
}

func TestReset(t *testing.T) {
	m := newMachine(t)
	m.setMode80x25()
	m.poke(0, 'A', 0x07)
	m.runFrames(3)

	m.adapter.Reset()
	test.ExpectEquality(t, m.adapter.Registers(), [32]uint8{})
	test.ExpectEquality(t, m.adapter.Control(), uint8(0))
	test.ExpectEquality(t, m.adapter.Frames(), uint64(0))
	test.ExpectEquality(t, m.adapter.Phase(), mda.BlankPhase)
	test.ExpectEquality(t, m.adapter.Peek(0), uint8(0))

	// the adapter remains installed
	m.bus.Out(0x3b4, 3)
	test.ExpectEquality(t, m.adapter.Index(), uint8(3))
	if t.Failed() {
		t.Log(spew.Sdump(m.adapter.Registers()))
	}
}

func TestSnapshot(t *testing.T) {
	m := newMachine(t)
	m.setMode80x25()
	m.poke(0, 'A', 0x07)

	s := m.adapter.Snapshot()
	m.poke(0, 'B', 0x07)
	m.setRegister(mda.RegStartLow, 0x10)

	test.ExpectEquality(t, s.Peek(0), uint8('A'))
	test.ExpectEquality(t, s.Register(mda.RegStartLow), uint8(0))
	test.ExpectEquality(t, m.adapter.Peek(0), uint8('B'))

	// the snapshot is not installed
	test.ExpectSuccess(t, s.Install(bus.NewBus(), scheduler.NewScheduler()))
}

func TestRefreshRate(t *testing.T) {
	m := newMachine(t)
	m.setMode80x25()
	test.ExpectApproximate(t, m.adapter.RefreshRate(), float32(clocks.MDA*1000000/(98*linesPerFrame)), 0.0001)
}
