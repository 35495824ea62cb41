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
	"testing"

	"github.com/NishiOwO/86Box/gui"
	"github.com/NishiOwO/86Box/hardware/machine"
	"github.com/NishiOwO/86Box/test"
)

func newMachine(t *testing.T) *machine.Machine {
	t.Helper()
	mch, err := machine.NewMachine(nil)
	test.DemandSuccess(t, err)
	mch.Display.SetFPSCap(false)
	t.Cleanup(func() {
		_ = mch.End()
	})
	return mch
}

func TestKeyHandler(t *testing.T) {
	mch := newMachine(t)
	h := &keyHandler{mch: mch}

	key := func(k string, down bool) gui.Event {
		return gui.Event{ID: gui.EventKeyboard, Data: gui.EventDataKeyboard{Key: k, Down: down}}
	}

	test.ExpectEquality(t, h.handle(gui.Event{ID: gui.EventQuit}), false)
	test.ExpectEquality(t, h.handle(key("Escape", true)), false)
	test.ExpectEquality(t, h.handle(key("Escape", false)), true)

	test.ExpectEquality(t, h.handle(key("F9", true)), true)
	test.ExpectEquality(t, mch.Prefs.FPSCap.Get().(bool), false)

	test.ExpectEquality(t, h.handle(key("F10", true)), true)
	test.ExpectEquality(t, mch.Display.Scheme(), "green")
}

func TestDemoPage(t *testing.T) {
	mch := newMachine(t)
	mch.SetMode80x25()
	demoPage(mch)
	test.DemandSuccess(t, mch.RunFrames(2))

	page := mch.MDA.TextPage()
	test.ExpectEquality(t, page[0], "Monochrome Display Adapter")
	test.ExpectEquality(t, page[14], ">")
}

func BenchmarkFrames(b *testing.B) {
	mch, err := machine.NewMachine(nil)
	if err != nil {
		b.Fatal(err)
	}
	defer mch.End()
	mch.Display.SetFPSCap(false)
	mch.SetMode80x25()
	demoPage(mch)
	b.ResetTimer()
	for range b.N {
		if err := mch.RunFrames(1); err != nil {
			b.Fatal(err)
		}
	}
}
