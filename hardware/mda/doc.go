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

// Package mda emulates the IBM Monochrome Display Adapter. The adapter is a
// 6845 CRT controller, 4KiB of video memory holding character/attribute pairs
// and a character generator producing 9 dot wide cells.
//
// The MDA type implements the bus.IODevice, bus.MemoryDevice and
// scheduler.TickHandler interfaces. Install() connects the adapter to a bus
// and a scheduler:
//
//	adapter, err := mda.NewMDA(display, font.Builtin(), clocks.XT)
//	if err != nil {
//		return err
//	}
//	err = adapter.Install(b, sch)
//
// Every call to Tick() processes half a scanline. The blank phase draws the
// current scanline into the buffer provided by the Presentation. The active
// phase advances the CRTC counters. When the vertical sync position is reached
// the accumulated lines are passed to the Presentation as a frame.
//
// The adapter is not safe for concurrent use. Bus accesses and calls to
// Tick() must be made from the same goroutine.
package mda
