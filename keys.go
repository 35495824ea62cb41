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

package main

import (
	"fmt"
	"slices"

	"github.com/NishiOwO/86Box/gui"
	"github.com/NishiOwO/86Box/hardware/display"
	"github.com/NishiOwO/86Box/hardware/machine"
	"github.com/NishiOwO/86Box/logger"
	"github.com/NishiOwO/86Box/screenshot"
)

// demoPage fills the page with examples of every attribute.
func demoPage(mch *machine.Machine) {
	mch.Print(0, 0, "Monochrome Display Adapter", 0x0f)
	mch.Print(2, 2, "normal", 0x07)
	mch.Print(3, 2, "intense", 0x0f)
	mch.Print(4, 2, "underline", 0x01)
	mch.Print(5, 2, "intense underline", 0x09)
	mch.Print(6, 2, "reverse", 0x70)
	mch.Print(7, 2, "blinking", 0x87)
	mch.Print(8, 2, "blinking reverse", 0xf0)

	// line graphics characters continue into the ninth column
	for c := range 32 {
		mch.Print(10, 2+c, string([]byte{byte(0xc0 + c)}), 0x07)
	}

	mch.Print(12, 2, "F9 fps cap   F10 display scheme   F12 screenshot   Esc quit", 0x07)
	mch.Print(14, 0, "> ", 0x07)
	mch.SetCursor(14, 2)
}

type keyHandler struct {
	mch *machine.Machine
}

// handle returns false if the emulation should stop.
func (h *keyHandler) handle(ev gui.Event) bool {
	switch ev.ID {
	case gui.EventQuit:
		return false

	case gui.EventKeyboard:
		kb := ev.Data.(gui.EventDataKeyboard)
		if !kb.Down {
			return true
		}

		switch kb.Key {
		case "Escape":
			return false

		case "F9":
			fpsCap := !h.mch.Prefs.FPSCap.Get().(bool)
			_ = h.mch.Prefs.FPSCap.Set(fpsCap)
			logger.Logf(logger.Allow, "mda86", "fps cap: %v", fpsCap)

		case "F10":
			i := slices.Index(display.Schemes, h.mch.Display.Scheme())
			next := display.Schemes[(i+1)%len(display.Schemes)]
			if err := h.mch.Prefs.Scheme.Set(next); err != nil {
				logger.Log(logger.Allow, "mda86", err)
			}

		case "F12":
			fn, err := screenshot.Save(h.mch.Display.Image(), h.mch.Prefs.Scale.Get().(float64))
			if err != nil {
				logger.Log(logger.Allow, "mda86", err)
			} else {
				fmt.Printf("screenshot saved to %s\n", fn)
			}
		}
	}

	return true
}
