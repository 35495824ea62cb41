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

// Package scheduler runs devices that are driven by virtual time. Each device
// implements the TickHandler interface and reports, as the return value of
// every Tick(), the virtual time at which it wants to be called next.
//
// Devices are always called in non-decreasing virtual time order. Devices due
// at the same time are called in the order in which they were added.
//
// The scheduler is not safe for concurrent use. Bus accesses to a device
// happen between calls to Step() or RunUntil() and never during them.
package scheduler
