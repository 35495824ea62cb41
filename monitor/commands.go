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

package monitor

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"golang.design/x/clipboard"

	"github.com/NishiOwO/86Box/hardware/mda"
	"github.com/NishiOwO/86Box/logger"
	"github.com/NishiOwO/86Box/monitor/easyterm"
	"github.com/NishiOwO/86Box/screenshot"
)

func parseNum(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

func parseCount(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid count %q", args[0])
	}
	return n, nil
}

func argCount(args []string, min, max int) error {
	if len(args) < min {
		return fmt.Errorf("too few arguments")
	}
	if max >= 0 && len(args) > max {
		return fmt.Errorf("too many arguments")
	}
	return nil
}

func (mon *Monitor) commandList() map[string]command {
	return map[string]command{
		"help": {"", "list commands", func(_ []string) error {
			mon.help()
			return nil
		}},
		"regs": {"", "show the CRTC registers", func(_ []string) error {
			fmt.Fprintln(mon.out, mon.registerPanel())
			return nil
		}},
		"status": {"", "show the state of the adapter", func(_ []string) error {
			fmt.Fprintln(mon.out, mon.panels())
			return nil
		}},
		"out":        {"PORT VALUE", "write to an I/O port", mon.outPort},
		"in":         {"PORT", "read from an I/O port", mon.inPort},
		"peek":       {"ADDRESS [COUNT]", "read memory", mon.peek},
		"poke":       {"ADDRESS VALUE...", "write memory", mon.poke},
		"frame":      {"[COUNT]", "run until the adapter presents a frame", mon.frame},
		"step":       {"[COUNT]", "run the scheduler for a number of events", mon.step},
		"mode":       {"", "program the 80x25 text mode", mon.mode},
		"print":      {"ROW COL ATTR TEXT", "print text on the page", mon.print},
		"cursor":     {"ROW COL", "move the cursor", mon.cursor},
		"text":       {"", "show the text of the displayed page", mon.text},
		"copy":       {"", "copy the text of the displayed page to the clipboard", mon.copyText},
		"dump":       {"FILE", "write the adapter state as a graphviz file", mon.dump},
		"screenshot": {"", "save the most recent frame as a PNG file", mon.screenshot},
		"scheme":     {"[NAME]", "show or change the display scheme", mon.scheme},
		"log":        {"[COUNT]", "show the most recent log entries", mon.log},
		"reset":      {"", "reset the adapter", mon.reset},
		"watch":      {"", "run and show the state until a key is pressed", mon.watch},
	}
}

func (mon *Monitor) outPort(args []string) error {
	if err := argCount(args, 2, 2); err != nil {
		return err
	}
	port, err := parseNum(args[0], 16)
	if err != nil {
		return err
	}
	data, err := parseNum(args[1], 8)
	if err != nil {
		return err
	}
	mon.mch.Bus.Out(uint16(port), uint8(data))
	return nil
}

func (mon *Monitor) inPort(args []string) error {
	if err := argCount(args, 1, 1); err != nil {
		return err
	}
	port, err := parseNum(args[0], 16)
	if err != nil {
		return err
	}
	fmt.Fprintf(mon.out, "%#04x: %#02x\n", port, mon.mch.Bus.In(uint16(port)))
	return nil
}

// peek reads through the bus. reads from the adapter's memory window are
// counted as memory accesses.
func (mon *Monitor) peek(args []string) error {
	if err := argCount(args, 1, 2); err != nil {
		return err
	}
	addr, err := parseNum(args[0], 20)
	if err != nil {
		return err
	}
	n, err := parseCount(args[1:], 1)
	if err != nil {
		return err
	}

	s := strings.Builder{}
	for i := range n {
		a := uint32(addr) + uint32(i)
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%05x:", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", mon.mch.Bus.Read(a)))
	}
	fmt.Fprintln(mon.out, s.String())
	return nil
}

func (mon *Monitor) poke(args []string) error {
	if err := argCount(args, 2, -1); err != nil {
		return err
	}
	addr, err := parseNum(args[0], 20)
	if err != nil {
		return err
	}
	for i, a := range args[1:] {
		v, err := parseNum(a, 8)
		if err != nil {
			return err
		}
		mon.mch.Bus.Write(uint32(addr)+uint32(i), uint8(v))
	}
	return nil
}

func (mon *Monitor) frame(args []string) error {
	n, err := parseCount(args, 1)
	if err != nil {
		return err
	}
	before := mon.mch.MDA.Frames()
	if err := mon.mch.RunFrames(n); err != nil {
		return err
	}
	if mon.mch.MDA.Frames() == before {
		fmt.Fprintln(mon.out, "no frame presented. is the vertical sync register set?")
	}
	return nil
}

func (mon *Monitor) step(args []string) error {
	n, err := parseCount(args, 1)
	if err != nil {
		return err
	}
	for range n {
		if !mon.mch.Scheduler.Step() {
			break
		}
	}
	fmt.Fprintln(mon.out, mon.mch.MDA)
	return nil
}

func (mon *Monitor) mode(_ []string) error {
	mon.mch.SetMode80x25()
	return nil
}

func (mon *Monitor) print(args []string) error {
	if err := argCount(args, 4, -1); err != nil {
		return err
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid row %q", args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid column %q", args[1])
	}
	attr, err := parseNum(args[2], 8)
	if err != nil {
		return err
	}
	mon.mch.Print(row, col, strings.Join(args[3:], " "), uint8(attr))
	return nil
}

func (mon *Monitor) cursor(args []string) error {
	if err := argCount(args, 2, 2); err != nil {
		return err
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid row %q", args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid column %q", args[1])
	}
	mon.mch.SetCursor(row, col)
	return nil
}

func (mon *Monitor) text(_ []string) error {
	for _, l := range mon.mch.MDA.TextPage() {
		fmt.Fprintln(mon.out, l)
	}
	return nil
}

func (mon *Monitor) copyText(_ []string) error {
	mon.clipboardOnce.Do(func() {
		mon.clipboardOK = clipboard.Init() == nil
	})
	if !mon.clipboardOK {
		return fmt.Errorf("clipboard is not available")
	}
	clipboard.Write(clipboard.FmtText, []byte(strings.Join(mon.mch.MDA.TextPage(), "\n")))
	return nil
}

// the parts of the adapter written by the dump command. the video memory and
// font are left out because they make the graph unreadable
type dumpState struct {
	Registers [32]uint8
	Index     uint8
	Control   uint8
	Status    uint8
	Phase     string
	Clock     int64
	Active    int64
	Blank     int64
	Row       int
	Scanline  int
	Address   uint16
	Frames    uint64
	Blink     int
	Cursor    bool
	Enabled   bool
	Reads     uint64
	Writes    uint64
}

func newDumpState(m *mda.MDA) *dumpState {
	st := &dumpState{
		Registers: m.Registers(),
		Index:     m.Index(),
		Control:   m.Control(),
		Status:    m.Status(),
		Phase:     m.Phase().String(),
		Clock:     m.Clock(),
		Frames:    m.Frames(),
		Blink:     m.Blink(),
		Cursor:    m.CursorOn(),
		Enabled:   m.DisplayEnabled(),
	}
	st.Active, st.Blank = m.Durations()
	st.Row, st.Scanline, st.Address = m.Counters()
	st.Reads, st.Writes = m.MemoryAccesses()
	return st
}

func (mon *Monitor) dump(args []string) error {
	if err := argCount(args, 1, 1); err != nil {
		return err
	}
	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	memviz.Map(f, newDumpState(mon.mch.MDA.Snapshot()))
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(mon.out, "adapter state written to %s\n", args[0])
	return nil
}

func (mon *Monitor) screenshot(_ []string) error {
	fn, err := screenshot.Save(mon.mch.Display.Image(), mon.mch.Prefs.Scale.Get().(float64))
	if err != nil {
		return err
	}
	fmt.Fprintf(mon.out, "screenshot saved to %s\n", fn)
	return nil
}

func (mon *Monitor) scheme(args []string) error {
	if err := argCount(args, 0, 1); err != nil {
		return err
	}
	if len(args) == 1 {
		if err := mon.mch.Prefs.Scheme.Set(args[0]); err != nil {
			return err
		}
	}
	fmt.Fprintln(mon.out, mon.mch.Display.Scheme())
	return nil
}

func (mon *Monitor) log(args []string) error {
	n, err := parseCount(args, 10)
	if err != nil {
		return err
	}
	logger.Tail(mon.out, n)
	return nil
}

func (mon *Monitor) reset(_ []string) error {
	mon.mch.MDA.Reset()
	return nil
}

func (mon *Monitor) watch(_ []string) error {
	if mon.term == nil {
		return fmt.Errorf("watch requires a terminal")
	}

	mon.term.CBreakMode()
	defer mon.term.CanonicalMode()

	stop := make(chan struct{})
	go func() {
		_, _ = mon.term.ReadKey()
		close(stop)
	}()

	for {
		select {
		case <-stop:
			return nil
		default:
		}

		if err := mon.mch.RunFrames(1); err != nil {
			// the key reader is still waiting
			mon.term.Print("%v\npress a key\n", err)
			<-stop
			return err
		}

		mon.term.Print("%s%s%s\n", easyterm.ClearScreen, easyterm.CursorHome, mon.panels())
	}
}
