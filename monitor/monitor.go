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

// Package monitor is a command line for inspecting and driving the adapter
// without a CPU. Commands read and write the I/O ports and video memory
// through the bus, run the machine for a number of frames or ticks, and show
// the state of the CRTC.
//
// When the input and output are a terminal the watch command redraws the
// state panel every frame until a key is pressed.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/hardware/machine"
	"github.com/NishiOwO/86Box/logger"
	"github.com/NishiOwO/86Box/monitor/easyterm"
)

// Sentinal error patterns.
const (
	UnknownCommand = "monitor: unknown command (%s)"
	CommandError   = "monitor: %s: %v"
)

// Prompt shown before every command when the input is a terminal.
const Prompt = "mda> "

// Monitor reads commands from the input and writes results to the output.
type Monitor struct {
	mch *machine.Machine

	in  *bufio.Scanner
	out io.Writer

	// nil if the input and output are not a terminal
	term *easyterm.Terminal

	commands map[string]command

	clipboardOnce sync.Once
	clipboardOK   bool
}

type command struct {
	usage string
	help  string
	fn    func(args []string) error
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mch *machine.Machine, in io.Reader, out io.Writer) *Monitor {
	mon := &Monitor{
		mch: mch,
		in:  bufio.NewScanner(in),
		out: out,
	}
	mon.commands = mon.commandList()

	inf, inOk := in.(*os.File)
	outf, outOk := out.(*os.File)
	if inOk && outOk && term.IsTerminal(int(inf.Fd())) && term.IsTerminal(int(outf.Fd())) {
		mon.term = &easyterm.Terminal{}
		if err := mon.term.Initialise(inf, outf); err != nil {
			logger.Log(logger.Allow, "monitor", err)
			mon.term = nil
		}
	}

	return mon
}

// Run commands until the quit command or the end of the input.
func (mon *Monitor) Run() error {
	if mon.term != nil {
		defer mon.term.CleanUp()
	}

	for {
		if mon.term != nil {
			mon.term.Print(Prompt)
		}
		if !mon.in.Scan() {
			return mon.in.Err()
		}

		quit, err := mon.Execute(mon.in.Text())
		if err != nil {
			fmt.Fprintf(mon.out, "* %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Execute a single command line. Returns true if the command was quit.
func (mon *Monitor) Execute(line string) (bool, error) {
	f := strings.Fields(line)
	if len(f) == 0 || strings.HasPrefix(f[0], "#") {
		return false, nil
	}

	name := strings.ToLower(f[0])
	if name == "quit" || name == "exit" {
		return true, nil
	}

	cmd, ok := mon.commands[name]
	if !ok {
		return false, curated.Errorf(UnknownCommand, name)
	}
	if err := cmd.fn(f[1:]); err != nil {
		return false, curated.Errorf(CommandError, name, err)
	}
	return false, nil
}

func (mon *Monitor) help() {
	names := make([]string, 0, len(mon.commands))
	for n := range mon.commands {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		c := mon.commands[n]
		fmt.Fprintf(mon.out, "%-28s %s\n", strings.TrimSpace(n+" "+c.usage), c.help)
	}
	fmt.Fprintf(mon.out, "%-28s %s\n", "quit", "leave the monitor")
}
