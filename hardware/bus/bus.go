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

package bus

import (
	"slices"

	"github.com/NishiOwO/86Box/curated"
)

// IODevice responds to reads and writes of the I/O port address space.
type IODevice interface {
	In(port uint16) uint8
	Out(port uint16, data uint8)
}

// MemoryDevice responds to reads and writes of the memory address space.
type MemoryDevice interface {
	ReadByte(addr uint32) uint8
	WriteByte(addr uint32, data uint8)
}

// Floating is the value returned by reads from unclaimed ports and addresses.
const Floating = 0xff

// AddressMask is applied to every memory address. The bus has 20 address
// lines.
const AddressMask = 0xfffff

// Sentinal error patterns.
const (
	PortConflict   = "bus: port %#04x already claimed"
	MemoryConflict = "bus: memory %#05x-%#05x overlaps existing device"
	InvalidRange   = "bus: invalid range %#x-%#x"
)

type memoryMapping struct {
	base, size uint32
	dev        MemoryDevice
}

func (m memoryMapping) contains(addr uint32) bool {
	return addr >= m.base && addr < m.base+m.size
}

// Bus connects IODevices and MemoryDevices to the CPU side of the machine.
type Bus struct {
	ports  map[uint16]IODevice
	memory []memoryMapping
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{
		ports: make(map[uint16]IODevice),
	}
}

// InstallIODevice claims the ports from and to (inclusive) for the device.
// The installation fails, and no ports are claimed, if any port in the range
// is already claimed.
func (b *Bus) InstallIODevice(dev IODevice, from, to uint16) error {
	if to < from {
		return curated.Errorf(InvalidRange, from, to)
	}
	for p := uint32(from); p <= uint32(to); p++ {
		if _, ok := b.ports[uint16(p)]; ok {
			return curated.Errorf(PortConflict, p)
		}
	}
	for p := uint32(from); p <= uint32(to); p++ {
		b.ports[uint16(p)] = dev
	}
	return nil
}

// RemoveIODevice releases all ports claimed by the device.
func (b *Bus) RemoveIODevice(dev IODevice) {
	for p, d := range b.ports {
		if d == dev {
			delete(b.ports, p)
		}
	}
}

// InstallMemoryDevice claims the memory window of size bytes starting at
// base for the device.
func (b *Bus) InstallMemoryDevice(dev MemoryDevice, base, size uint32) error {
	if size == 0 || base+size-1 > AddressMask || base+size < base {
		return curated.Errorf(InvalidRange, base, base+size)
	}
	for _, m := range b.memory {
		if base < m.base+m.size && m.base < base+size {
			return curated.Errorf(MemoryConflict, base, base+size-1)
		}
	}
	b.memory = append(b.memory, memoryMapping{base: base, size: size, dev: dev})
	return nil
}

// RemoveMemoryDevice releases all memory windows claimed by the device.
func (b *Bus) RemoveMemoryDevice(dev MemoryDevice) {
	b.memory = slices.DeleteFunc(b.memory, func(m memoryMapping) bool {
		return m.dev == dev
	})
}

// In reads a byte from the I/O port.
func (b *Bus) In(port uint16) uint8 {
	if dev, ok := b.ports[port]; ok {
		return dev.In(port)
	}
	return Floating
}

// Out writes a byte to the I/O port.
func (b *Bus) Out(port uint16, data uint8) {
	if dev, ok := b.ports[port]; ok {
		dev.Out(port, data)
	}
}

func (b *Bus) mapped(addr uint32) MemoryDevice {
	for _, m := range b.memory {
		if m.contains(addr) {
			return m.dev
		}
	}
	return nil
}

// Read a byte from the memory address.
func (b *Bus) Read(addr uint32) uint8 {
	addr &= AddressMask
	if dev := b.mapped(addr); dev != nil {
		return dev.ReadByte(addr)
	}
	return Floating
}

// Write a byte to the memory address.
func (b *Bus) Write(addr uint32, data uint8) {
	addr &= AddressMask
	if dev := b.mapped(addr); dev != nil {
		dev.WriteByte(addr, data)
	}
}
