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

package clocks_test

import (
	"testing"

	"github.com/NishiOwO/86Box/hardware/clocks"
	"github.com/NishiOwO/86Box/test"
)

func TestCharacterDuration(t *testing.T) {
	// a CPU running at the character clock rate takes exactly one cycle per
	// character
	test.ExpectEquality(t, clocks.CharacterDuration(1, clocks.MDA), int64(1<<clocks.TimerShift))
	test.ExpectEquality(t, clocks.CharacterDuration(0, clocks.XT), int64(0))

	// 98 characters per line at 4.77MHz is about 230 CPU cycles
	test.ExpectApproximate(t, clocks.Cycles(clocks.CharacterDuration(98, clocks.XT)), 230.17, 0.001)
}

func TestSecond(t *testing.T) {
	test.ExpectEquality(t, clocks.Second(1.0), int64(1000000<<clocks.TimerShift))
}
