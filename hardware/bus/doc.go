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

// Package bus routes byte-wide accesses from the emulated CPU to devices. The
// I/O port space and the memory address space are separate. A device claims a
// range of ports with InstallIODevice() and a window of memory with
// InstallMemoryDevice().
//
// Reads of ports or addresses that no device has claimed return 0xff, the
// value of a floating ISA data bus. Writes to them are discarded.
package bus
