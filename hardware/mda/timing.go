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

import "github.com/NishiOwO/86Box/hardware/clocks"

// durations of the two phases are measured in character clocks and converted
// to virtual time for the current cpu clock
func (m *MDA) recalcTimings() {
	total := int(m.crtc[RegHorizTotal]) + 1
	active := int(m.crtc[RegHorizDisplayed])

	// the blank phase is empty if more characters are displayed than the
	// horizontal total allows
	m.activeDuration = clocks.CharacterDuration(active, m.cpuMHz)
	m.blankDuration = clocks.CharacterDuration(max(total-active, 0), m.cpuMHz)
}

// RefreshRate returns the number of frames per second produced with the
// current register values.
func (m *MDA) RefreshRate() float32 {
	scanlines := (int(m.crtc[RegVertTotal])+1)*(int(m.crtc[RegMaxScanline])+1) + int(m.crtc[RegVertTotalAdjust])
	characters := int(m.crtc[RegHorizTotal]) + 1
	return float32(clocks.MDA * 1000000 / float64(characters*scanlines))
}
