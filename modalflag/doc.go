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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given with NewArgs() and parsed with Parse():
//
//	md = modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS", "MONITOR")
//	_, _ = md.Parse()
//
// After parsing, Mode() returns the selected sub-mode, or the first listed
// sub-mode if none was given on the command line. Calling NewMode() prepares
// a new set of flags for the selected mode and the following call to Parse()
// continues from the argument after the mode name:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 2.0, "window scaling")
//		_, _ = md.Parse()
//	}
//
// Non-flag arguments are retrieved with RemainingArgs() or GetArg().
package modalflag
