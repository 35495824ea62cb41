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

// Package clocks defines the clock rates of the emulated machine and the
// fixed-point virtual time used by the scheduler.
//
// Virtual time is measured in CPU cycles, shifted left by TimerShift bits so
// that fractional cycles can be accumulated without drift.
package clocks

// CPU clock rates in MHz.
const (
	XT   = 4.772728
	XT8  = 8.0
	AT6  = 6.0
	AT8  = 8.0
	AT12 = 12.0
)

// MDA is the rate of the MDA character clock in MHz.
const MDA = 2.032125

// TimerShift is the number of fractional bits in a virtual time value.
const TimerShift = 6

// CyclesPerCharacter returns the number of CPU cycles in one MDA character
// clock for a CPU running at cpuMHz.
func CyclesPerCharacter(cpuMHz float64) float64 {
	return cpuMHz / MDA
}

// CharacterDuration returns the virtual time taken by the specified number of
// character clocks.
func CharacterDuration(characters int, cpuMHz float64) int64 {
	return int64(float64(characters) * CyclesPerCharacter(cpuMHz) * (1 << TimerShift))
}

// Cycles converts virtual time to CPU cycles.
func Cycles(t int64) float64 {
	return float64(t) / (1 << TimerShift)
}

// Second returns the virtual time in one second of emulated time.
func Second(cpuMHz float64) int64 {
	return int64(cpuMHz * 1000000 * (1 << TimerShift))
}
