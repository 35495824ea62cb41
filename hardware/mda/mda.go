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

import (
	"fmt"
	"strings"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/hardware/bus"
	"github.com/NishiOwO/86Box/hardware/font"
	"github.com/NishiOwO/86Box/hardware/scheduler"
	"github.com/NishiOwO/86Box/logger"
)

// Memory layout of the adapter.
const (
	// size of the video memory
	VRAMSize = 0x1000

	// the video memory is repeated throughout the memory window
	MemoryBase   = 0xb0000
	MemoryWindow = 0x8000
)

// MaxDisplayLines is the number of scanlines in the Presentation buffer. The
// display line counter wraps at this value.
const MaxDisplayLines = 500

// MaxWidth is the number of pixels in a scanline of the Presentation buffer.
const MaxWidth = 256 * CellWidth

// CellWidth is the number of dots in a character cell.
const CellWidth = 9

// memory address counter of the CRTC is 14 bits wide
const addressMask = 0x3fff

// Sentinal error patterns.
const (
	ConstructionError = "mda: %v"
)

// Presentation is the destination for the adapter's output. It owns the
// buffer the adapter draws into.
type Presentation interface {
	// Scanline returns the buffer for the display line. Lines are numbered
	// from zero to MaxDisplayLines-1 and should be MaxWidth long. Pixels are
	// palette indices.
	Scanline(line int) []uint8

	// ForceResize returns true if the next frame must renegotiate the
	// output size even if the dimensions have not changed.
	ForceResize() bool

	// NegotiateSize is called when the dimensions of the frame change. It
	// should clear the force resize flag.
	NegotiateSize(width, height int)

	// PresentFrame is called once per frame with the range of lines that
	// make up the frame.
	PresentFrame(startLine, lineCount int)

	// SetResolution is called after every frame with the text resolution
	// of the display.
	SetResolution(columns, rows int)
}

// Phase indicates which half of the scanline is processed by the next call to
// Tick().
type Phase int

// List of valid Phase values.
const (
	BlankPhase Phase = iota
	ActivePhase
)

func (p Phase) String() string {
	switch p {
	case BlankPhase:
		return "blank"
	case ActivePhase:
		return "active"
	}
	return "unknown phase"
}

// MDA is the monochrome display adapter.
type MDA struct {
	pres   Presentation
	font   *font.Font
	cpuMHz float64

	// CRTC register bank and the currently selected register
	crtc      [32]uint8
	crtcIndex uint8

	// mode control and status registers
	ctrl uint8
	stat uint8

	// virtual time taken by each phase of the scanline
	activeDuration int64
	blankDuration  int64

	// virtual time of the next call to Tick()
	clock int64

	// lines of the frame being accumulated. after a vertical sync firstLine
	// is noFirstLine until a line has been drawn
	firstLine int
	lastLine  int

	phase Phase

	// the line in the presentation buffer the next scanline will be drawn to
	displayLine int

	// character row and scanline counters
	row      int
	scanline int

	// memory address counter and the address at the start of the row
	ma     uint16
	maBack uint16

	// cursorWindow is true between the cursor start and cursor end
	// scanlines. cursorOn is the blink state of the cursor for the frame
	cursorWindow bool
	cursorOn     bool

	displayEnabled bool

	// incremented every frame. bit 4 is the blink phase
	blink int

	// number of frames presented
	frames uint64

	// remaining active phases of the vertical sync pulse
	vsync int

	// remaining scanlines of the vertical total adjustment
	vadj int

	vram []uint8

	// size of the most recently negotiated frame, before clamping
	width  int
	height int

	// memory access counters
	reads  uint64
	writes uint64

	// the bus and scheduler the adapter is installed in
	bus   *bus.Bus
	sch   *scheduler.Scheduler
	event *scheduler.Event
}

var _ bus.IODevice = (*MDA)(nil)
var _ bus.MemoryDevice = (*MDA)(nil)
var _ scheduler.TickHandler = (*MDA)(nil)

// value of firstLine after a vertical sync. larger than any display line
const noFirstLine = 1000

// NewMDA is the preferred method of initialisation for the MDA type. The
// cpuMHz argument is the clock rate of the CPU, which defines the unit of
// virtual time.
func NewMDA(pres Presentation, fnt *font.Font, cpuMHz float64) (*MDA, error) {
	if pres == nil {
		return nil, curated.Errorf(ConstructionError, "no presentation")
	}
	if fnt == nil {
		return nil, curated.Errorf(ConstructionError, "no font")
	}
	if cpuMHz <= 0 {
		return nil, curated.Errorf(ConstructionError, fmt.Sprintf("invalid cpu clock (%.3fMHz)", cpuMHz))
	}

	m := &MDA{
		pres:   pres,
		font:   fnt,
		cpuMHz: cpuMHz,
		vram:   make([]uint8, VRAMSize),
	}
	m.reset()

	logger.Logf(logger.Allow, "mda", "attached with cpu clock of %.3fMHz", cpuMHz)

	return m, nil
}

func (m *MDA) reset() {
	m.crtc = [32]uint8{}
	m.crtcIndex = 0
	m.ctrl = 0
	m.stat = 0
	m.firstLine = 0
	m.lastLine = 0
	m.phase = BlankPhase
	m.displayLine = 0
	m.row = 0
	m.scanline = 0
	m.ma = 0
	m.maBack = 0
	m.cursorWindow = false
	m.cursorOn = false
	m.displayEnabled = false
	m.blink = 0
	m.frames = 0
	m.vsync = 0
	m.vadj = 0
	m.width = 0
	m.height = 0
	m.reads = 0
	m.writes = 0
	clear(m.vram)
	m.recalcTimings()
}

// Reset returns the adapter to the state it was in when it was created. The
// adapter remains installed.
func (m *MDA) Reset() {
	m.reset()
	logger.Log(logger.Allow, "mda", "reset")
}

// Install the adapter's ports and memory in the bus and add the adapter to
// the scheduler. The first call to Tick() is at the current virtual time.
func (m *MDA) Install(b *bus.Bus, sch *scheduler.Scheduler) error {
	if m.bus != nil {
		return curated.Errorf(ConstructionError, "already installed")
	}
	if err := b.InstallIODevice(m, PortFirst, PortLast); err != nil {
		return curated.Errorf(ConstructionError, err)
	}
	if err := b.InstallMemoryDevice(m, MemoryBase, MemoryWindow); err != nil {
		b.RemoveIODevice(m)
		return curated.Errorf(ConstructionError, err)
	}

	m.bus = b
	m.sch = sch
	m.clock = sch.Now()
	m.event = sch.Add("mda", m, m.clock)

	return nil
}

// Close removes the adapter from the bus and scheduler it was installed in
// and releases the video memory. The adapter cannot be used after Close().
func (m *MDA) Close() error {
	if m.bus != nil {
		m.bus.RemoveIODevice(m)
		m.bus.RemoveMemoryDevice(m)
		m.bus = nil
	}
	if m.sch != nil {
		m.sch.Remove(m.event)
		m.sch = nil
		m.event = nil
	}
	m.vram = nil
	logger.Log(logger.Allow, "mda", "detached")
	return nil
}

// SetCPUClock changes the clock rate of the CPU. The durations of the phases
// are recalculated.
func (m *MDA) SetCPUClock(cpuMHz float64) {
	if cpuMHz <= 0 {
		return
	}
	m.cpuMHz = cpuMHz
	m.recalcTimings()
	logger.Logf(logger.Allow, "mda", "cpu clock changed to %.3fMHz", cpuMHz)
}

// SetFont changes the character generator. A nil font is ignored.
func (m *MDA) SetFont(fnt *font.Font) {
	if fnt != nil {
		m.font = fnt
	}
}

// ReadByte implements the bus.MemoryDevice interface.
func (m *MDA) ReadByte(addr uint32) uint8 {
	m.reads++
	return m.vram[addr&(VRAMSize-1)]
}

// WriteByte implements the bus.MemoryDevice interface.
func (m *MDA) WriteByte(addr uint32, data uint8) {
	m.writes++
	m.vram[addr&(VRAMSize-1)] = data
}

// Peek returns the byte in video memory without counting the access.
func (m *MDA) Peek(addr uint32) uint8 {
	return m.vram[addr&(VRAMSize-1)]
}

// Poke sets the byte in video memory without counting the access.
func (m *MDA) Poke(addr uint32, data uint8) {
	m.vram[addr&(VRAMSize-1)] = data
}

// MemoryAccesses returns the number of reads and writes made through the
// memory window.
func (m *MDA) MemoryAccesses() (reads uint64, writes uint64) {
	return m.reads, m.writes
}

// Snapshot returns a copy of the adapter. The copy is not installed.
func (m *MDA) Snapshot() *MDA {
	n := *m
	n.vram = make([]uint8, len(m.vram))
	copy(n.vram, m.vram)
	n.bus = nil
	n.sch = nil
	n.event = nil
	return &n
}

// Phase returns the phase of the next call to Tick().
func (m *MDA) Phase() Phase {
	return m.phase
}

// Clock returns the virtual time of the next call to Tick().
func (m *MDA) Clock() int64 {
	return m.clock
}

// Durations returns the virtual time taken by the active and blank phases.
func (m *MDA) Durations() (active int64, blank int64) {
	return m.activeDuration, m.blankDuration
}

// Counters returns the character row, scanline and memory address counters.
func (m *MDA) Counters() (row int, scanline int, ma uint16) {
	return m.row, m.scanline, m.ma
}

// DisplayEnabled returns true if the beam is in the visible region.
func (m *MDA) DisplayEnabled() bool {
	return m.displayEnabled
}

// CursorOn returns the blink state of the cursor.
func (m *MDA) CursorOn() bool {
	return m.cursorOn
}

// Frames returns the number of frames passed to the Presentation.
func (m *MDA) Frames() uint64 {
	return m.frames
}

// Blink returns the value of the frame blink counter.
func (m *MDA) Blink() int {
	return m.blink
}

// TextPage returns the characters of the displayed page as lines of text. Only
// the displayed columns and rows are returned. Characters outside the
// printable ASCII range are replaced by spaces.
func (m *MDA) TextPage() []string {
	cols := int(m.crtc[RegHorizDisplayed])
	rows := int(m.crtc[RegVertDisplayed])
	start := m.startAddress()

	page := make([]string, 0, rows)
	for r := range rows {
		s := strings.Builder{}
		for c := range cols {
			ch := m.vram[((start+uint16(r*cols+c))<<1)&(VRAMSize-1)]
			if ch < 0x20 || ch > 0x7e {
				ch = ' '
			}
			s.WriteByte(ch)
		}
		page = append(page, strings.TrimRight(s.String(), " "))
	}
	return page
}

func (m *MDA) String() string {
	return fmt.Sprintf("%s row=%d sc=%d ma=%#04x line=%d disp=%v cursor=%v/%v blink=%d vsync=%d vadj=%d",
		m.phase, m.row, m.scanline, m.ma, m.displayLine, m.displayEnabled,
		m.cursorWindow, m.cursorOn, m.blink, m.vsync, m.vadj)
}
