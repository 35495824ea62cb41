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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"slices"
	"strings"
)

// Modes walks a command line one mode at a time. Each mode has its own set
// of flags and an optional list of sub-modes.
type Modes struct {
	// help messages are written to Output. no help is shown if it is nil
	Output io.Writer

	flags *flag.FlagSet
	help  string

	// command line and the index of the first argument for the next Parse()
	args []string
	from int

	// candidates for the next Parse(). the first is the default
	subModes []string

	// every mode selected so far
	path []string
}

// ParseResult says how the caller should proceed after Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	ParseContinue ParseResult = iota
	ParseHelp
	ParseError
)

func (md *Modes) String() string {
	return md.Path()
}

// Path is the slash separated list of modes selected so far.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// Mode is the most recently selected mode.
func (md *Modes) Mode() string {
	if n := len(md.path); n > 0 {
		return md.path[n-1]
	}
	return ""
}

// NewArgs starts over with a new command line.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.from = 0
	md.NewMode()
}

// NewMode clears the flags and sub-modes ready for the arguments that follow
// the current mode.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.help = ""
}

// AdditionalHelp is printed after the flag summary.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// AddSubModes adds to the candidates for the next Parse(). Mode names are
// not case sensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Parse the flags for the current mode and select a sub-mode if any were
// added. Callers normally switch on the result:
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	if err := md.flags.Parse(md.args[md.from:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.help(md.Output, md.Path(), md.subModes, md.help)
			return ParseHelp, nil
		}
		if len(md.subModes) == 0 {
			return ParseError, err
		}

		// an unknown flag may belong to the default sub-mode
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	selected := md.subModes[0]
	if arg := strings.ToUpper(md.flags.Arg(0)); slices.Contains(md.subModes, arg) {
		selected = arg
		md.from = len(md.args) - md.flags.NArg() + 1
	}
	md.path = append(md.path, selected)

	return ParseContinue, nil
}

// RemainingArgs are the arguments left over after Parse(), excluding the
// name of a selected sub-mode.
func (md *Modes) RemainingArgs() []string {
	args := md.flags.Args()
	if len(md.subModes) > 0 && len(args) > 0 && strings.ToUpper(args[0]) == md.Mode() {
		return args[1:]
	}
	return args
}

// GetArg returns the i'th remaining argument or the empty string.
func (md *Modes) GetArg(i int) string {
	if args := md.RemainingArgs(); i >= 0 && i < len(args) {
		return args[i]
	}
	return ""
}
