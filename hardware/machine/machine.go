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

// Package machine assembles the bus, the scheduler, the adapter and the
// display into a machine that can be run frame by frame. There is no CPU.
// Programs drive the adapter through the bus, either directly or with the
// SetMode80x25() and Print() functions, which do what the BIOS would do.
package machine

import (
	"fmt"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/hardware/bus"
	"github.com/NishiOwO/86Box/hardware/display"
	"github.com/NishiOwO/86Box/hardware/font"
	"github.com/NishiOwO/86Box/hardware/mda"
	"github.com/NishiOwO/86Box/hardware/preferences"
	"github.com/NishiOwO/86Box/hardware/scheduler"
	"github.com/NishiOwO/86Box/logger"
	"github.com/NishiOwO/86Box/prefs"
)

// Machine is the emulated machine.
type Machine struct {
	Prefs     *preferences.Preferences
	Bus       *bus.Bus
	Scheduler *scheduler.Scheduler
	Display   *display.Display
	MDA       *mda.MDA
}

// the BIOS parameters for the 80x25 text mode and the control byte written
// after the parameters
var (
	Params80x25  = [16]uint8{0x61, 0x50, 0x52, 0x0f, 0x19, 0x06, 0x19, 0x19, 0x02, 0x0d, 0x0b, 0x0c, 0x00, 0x00, 0x00, 0x00}
	Control80x25 = uint8(0x29)
)

// NewMachine is the preferred method of initialisation for the Machine type.
// If p is nil the default preferences are used and nothing is loaded from or
// saved to disk.
func NewMachine(p *preferences.Preferences) (*Machine, error) {
	if p == nil {
		p = &preferences.Preferences{}
		p.SetDefaults()
	}

	fnt, err := loadFont(p.FontROM.Get().(string))
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	m := &Machine{
		Prefs:     p,
		Bus:       bus.NewBus(),
		Scheduler: scheduler.NewScheduler(),
		Display:   display.NewDisplay(p.Scheme.Get().(string)),
	}
	m.Display.SetFPSCap(p.FPSCap.Get().(bool))

	m.MDA, err = mda.NewMDA(m.Display, fnt, p.CPUClock.Get().(float64))
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}
	if err := m.MDA.Install(m.Bus, m.Scheduler); err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	p.Scheme.SetHookPost(func(v prefs.Value) error {
		m.Display.SetScheme(v.(string))
		return nil
	})
	p.CPUClock.SetHookPost(func(v prefs.Value) error {
		m.MDA.SetCPUClock(v.(float64))
		return nil
	})
	p.FontROM.SetHookPost(func(v prefs.Value) error {
		fnt, err := loadFont(v.(string))
		if err != nil {
			return err
		}
		m.MDA.SetFont(fnt)
		return nil
	})
	p.FPSCap.SetHookPost(func(v prefs.Value) error {
		m.Display.SetFPSCap(v.(bool))
		return nil
	})

	return m, nil
}

func loadFont(pth string) (*font.Font, error) {
	if pth == "" {
		logger.Log(logger.Allow, "machine", "using built-in font")
		return font.Builtin(), nil
	}
	fnt, err := font.LoadFile(pth)
	if err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "machine", "using font from %s", pth)
	return fnt, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("cpu=%.3fMHz %s", m.Prefs.CPUClock.Get().(float64), m.Display)
}

// SetMode80x25 programs the adapter with the 80x25 text mode and clears the
// screen.
func (m *Machine) SetMode80x25() {
	for i, v := range Params80x25 {
		m.Bus.Out(0x3b4, uint8(i))
		m.Bus.Out(0x3b5, v)
	}
	m.Bus.Out(mda.PortControl, Control80x25)
	m.Clear(0x07)
	m.Display.SetRefreshRate(m.MDA.RefreshRate())
}

// Clear the displayed page with spaces of the specified attribute.
func (m *Machine) Clear(attr uint8) {
	for i := range m.columns() * m.rows() {
		m.poke(i, ' ', attr)
	}
}

func (m *Machine) columns() int {
	return int(m.MDA.Register(mda.RegHorizDisplayed))
}

func (m *Machine) rows() int {
	return int(m.MDA.Register(mda.RegVertDisplayed))
}

// write the character and attribute to the cell at the offset from the start
// address
func (m *Machine) poke(offset int, chr uint8, attr uint8) {
	start := int(m.MDA.Register(mda.RegStartLow)) | int(m.MDA.Register(mda.RegStartHigh))<<8
	addr := mda.MemoryBase + uint32(((start+offset)<<1)&(mda.VRAMSize-1))
	m.Bus.Write(addr, chr)
	m.Bus.Write(addr+1, attr)
}

// Print text at the row and column with the specified attribute. Text that
// reaches the end of the row continues on the next row. Text beyond the end
// of the page is discarded. The newline character moves to the start of the
// next row.
func (m *Machine) Print(row int, col int, text string, attr uint8) {
	cols := m.columns()
	rows := m.rows()
	if cols == 0 {
		return
	}

	for _, c := range []byte(text) {
		if col >= cols {
			col = 0
			row++
		}
		if c == '\n' {
			col = 0
			row++
			continue
		}
		if row < 0 || row >= rows || col < 0 {
			return
		}
		m.poke(row*cols+col, c, attr)
		col++
	}
}

// SetCursor moves the cursor to the row and column.
func (m *Machine) SetCursor(row int, col int) {
	start := int(m.MDA.Register(mda.RegStartLow)) | int(m.MDA.Register(mda.RegStartHigh))<<8
	addr := start + row*m.columns() + col
	m.Bus.Out(0x3b4, mda.RegCursorHigh)
	m.Bus.Out(0x3b5, uint8(addr>>8))
	m.Bus.Out(0x3b4, mda.RegCursorLow)
	m.Bus.Out(0x3b5, uint8(addr))
}

// RunFrames runs the machine until the adapter has produced the specified
// number of frames. An error from the display stops the machine.
func (m *Machine) RunFrames(n int) error {
	for range n {
		if err := m.runFrame(); err != nil {
			return err
		}
	}
	return nil
}

// Run the machine until continueCheck returns false. The check is made after
// every frame.
func (m *Machine) Run(continueCheck func() bool) error {
	for continueCheck() {
		if err := m.runFrame(); err != nil {
			return err
		}
	}
	return nil
}

// the number of ticks after which a frame is considered overdue. this is longer
// than the longest frame the CRTC registers allow for. the adapter does not
// produce frames when the vertical sync register is zero
const frameTimeout = (128*32 + 256) * 2

func (m *Machine) runFrame() error {
	target := m.MDA.Frames() + 1
	steps := 0
	m.Scheduler.RunWhile(func() bool {
		steps++
		return m.MDA.Frames() < target && steps <= frameTimeout
	})
	m.Display.SetRefreshRate(m.MDA.RefreshRate())
	return m.Display.Err()
}

// End the machine. The adapter is removed from the bus and the display is
// ended.
func (m *Machine) End() error {
	if err := m.MDA.Close(); err != nil {
		return err
	}
	return m.Display.End()
}
