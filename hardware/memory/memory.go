// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// Well known addresses and sizes.
const (
	// the address of the small (5 byte per glyph) font
	SmallFontAddress = 0x000

	// the address of the big (10 byte per glyph) font. immediately follows
	// the small font
	BigFontAddress = SmallFontAddress + len(smallFont)

	// programs are loaded at this address
	ProgramStart = 0x200

	// the memory sizes used by the different dialects
	ClassicSize = 0x1000
	XOChipSize  = 0x10000

	// the range of sizes allowed by New()
	MinSize = ClassicSize
	MaxSize = XOChipSize
)

// Sentinel error patterns.
const (
	InvalidSize = "memory: invalid size (%d). must be between %d and %d"
	OutOfBounds = "memory: block of %d bytes at %#04x is out of bounds"
)

// Memory is the RAM of the virtual machine.
type Memory struct {
	data []uint8
}

// New is the preferred method of initialisation for the Memory type. The
// memory is cleared and the font data is installed.
func New(size int) (*Memory, error) {
	if size < MinSize || size > MaxSize {
		return nil, curated.Errorf(InvalidSize, size, MinSize, MaxSize)
	}
	mem := &Memory{
		data: make([]uint8, size),
	}
	mem.Reset()
	return mem, nil
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d bytes", len(mem.data))
}

// Size returns the number of bytes in memory.
func (mem *Memory) Size() int {
	return len(mem.data)
}

// Reset clears all memory and reinstalls the font data.
func (mem *Memory) Reset() {
	clear(mem.data)
	copy(mem.data[SmallFontAddress:], smallFont[:])
	copy(mem.data[BigFontAddress:], bigFont[:])
}

// Read a single byte. The address wraps at the end of memory.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[int(address)%len(mem.data)]
}

// Write a single byte. The address wraps at the end of memory.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[int(address)%len(mem.data)] = data
}

// InBounds returns true if a block of n bytes starting at address lies
// entirely inside memory.
func (mem *Memory) InBounds(address uint16, n int) bool {
	return n >= 0 && int(address)+n <= len(mem.data)
}

// Store copies the data into memory starting at address. The entire block
// must fit inside memory. Nothing is written if it does not.
func (mem *Memory) Store(address uint16, data []uint8) error {
	if !mem.InBounds(address, len(data)) {
		return curated.Errorf(OutOfBounds, len(data), address)
	}
	copy(mem.data[address:], data)
	return nil
}

// Fetch copies n bytes from memory starting at address. The entire block must
// lie inside memory.
func (mem *Memory) Fetch(address uint16, n int) ([]uint8, error) {
	if !mem.InBounds(address, n) {
		return nil, curated.Errorf(OutOfBounds, n, address)
	}
	b := make([]uint8, n)
	copy(b, mem.data[address:])
	return b, nil
}

// LoadProgram copies the program to ProgramStart. The program is truncated if
// it does not fit. Returns the number of bytes copied.
func (mem *Memory) LoadProgram(program []uint8) int {
	return copy(mem.data[ProgramStart:], program)
}

// Peek returns a copy of the memory between the two addresses. The end
// address is exclusive and is clamped to the size of memory.
func (mem *Memory) Peek(from int, to int) []uint8 {
	to = min(to, len(mem.data))
	if from < 0 || from >= to {
		return nil
	}
	b := make([]uint8, to-from)
	copy(b, mem.data[from:to])
	return b
}
