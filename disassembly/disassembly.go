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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Disassembly is a linear disassembly of a block of machine code.
type Disassembly struct {
	Entries []Entry
}

// Sentinel error patterns.
const (
	EmptyProgram = "disassembly: empty program"
)

// FromROM disassembles the ROM as though it has been loaded at the start of
// program memory. An odd trailing byte is disassembled as a DB entry.
func FromROM(rom []uint8) (*Disassembly, error) {
	if len(rom) == 0 {
		return nil, curated.Errorf(EmptyProgram)
	}

	word := func(i int) uint16 {
		if i+1 >= len(rom) {
			return 0
		}
		return uint16(rom[i])<<8 | uint16(rom[i+1])
	}

	dsm := &Disassembly{}

	i := 0
	for i+1 < len(rom) {
		e := Decode(uint16(memory.ProgramStart+i), word(i), word(i+2))

		// a long instruction with the operand missing is shown as data
		if i+e.Length > len(rom) {
			e = invalid(e)
		}

		dsm.Entries = append(dsm.Entries, e)
		i += e.Length
	}

	if i < len(rom) {
		dsm.Entries = append(dsm.Entries, Entry{
			Address:  uint16(memory.ProgramStart + i),
			Length:   1,
			Bytecode: fmt.Sprintf("%02x", rom[i]),
			Operator: "DB",
			Operand:  fmt.Sprintf("%#02x", rom[i]),
		})
	}

	return dsm, nil
}

// FromMemory disassembles memory from the address to the end address
// (exclusive).
func FromMemory(mem *memory.Memory, from uint16, to int) *Disassembly {
	dsm := &Disassembly{}
	for a := int(from); a < to; {
		e := At(mem, uint16(a))
		dsm.Entries = append(dsm.Entries, e)
		a += e.Length
	}
	return dsm
}

// At disassembles the single instruction at the address. Memory reads wrap in
// the same way as they do for the CPU.
func At(mem *memory.Memory, address uint16) Entry {
	read := func(a uint16) uint16 {
		return uint16(mem.Read(a))<<8 | uint16(mem.Read(a+1))
	}
	return Decode(address, read(address), read(address+2))
}

// change the entry to a data word
func invalid(e Entry) Entry {
	e.Valid = false
	e.Length = 2
	e.Bytecode = fmt.Sprintf("%04x", e.Opcode)
	e.Operator = "DW"
	e.Operand = fmt.Sprintf("%#04x", e.Opcode)
	return e
}

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	_, err := output.Write([]byte(e.Line(attr.ByteCode) + "\n"))
	if err != nil {
		return curated.Errorf("disassembly: %v", err)
	}
	return nil
}
