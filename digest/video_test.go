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

package digest_test

import (
	"testing"

	"github.com/NishiOwO/86Box/digest"
	"github.com/NishiOwO/86Box/hardware/machine"
	"github.com/NishiOwO/86Box/test"
)

func run(t *testing.T, text string, frames int) string {
	t.Helper()

	m, err := machine.NewMachine(nil)
	test.DemandSuccess(t, err)
	defer m.End()
	m.Display.SetFPSCap(false)

	dig := digest.NewVideo(m.Display)
	m.SetMode80x25()
	m.Print(0, 0, text, 0x07)
	test.DemandSuccess(t, m.RunFrames(frames))

	return dig.Hash()
}

func TestDeterminism(t *testing.T) {
	a := run(t, "HELLO WORLD", 3)
	b := run(t, "HELLO WORLD", 3)
	test.ExpectEquality(t, a, b)

	// different text
	c := run(t, "HELLO WORLD!", 3)
	test.ExpectInequality(t, a, c)

	// hashes are chained
	d := run(t, "HELLO WORLD", 4)
	test.ExpectInequality(t, a, d)
}

func TestReset(t *testing.T) {
	m, err := machine.NewMachine(nil)
	test.DemandSuccess(t, err)
	defer m.End()
	m.Display.SetFPSCap(false)

	dig := digest.NewVideo(m.Display)
	zero := dig.Hash()
	m.SetMode80x25()
	test.DemandSuccess(t, m.RunFrames(2))
	test.ExpectInequality(t, dig.Hash(), zero)
	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), zero)
}
