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

package cpu

import (
	"fmt"
)

// FaultKind identifies the reason for a fault.
type FaultKind int

// List of fault kinds.
const (
	StackOverflow FaultKind = iota
	StackUnderflow
	MemoryOutOfBounds
	FlagsOutOfRange
	UnrecognisedOpcode
)

func (k FaultKind) String() string {
	switch k {
	case StackOverflow:
		return "stack overflow"
	case StackUnderflow:
		return "stack underflow"
	case MemoryOutOfBounds:
		return "memory out of bounds"
	case FlagsOutOfRange:
		return "flags out of range"
	case UnrecognisedOpcode:
		return "unrecognised opcode"
	}
	return "unknown fault"
}

// Fault describes an instruction that could not be executed. It implements
// the error interface.
type Fault struct {
	Kind FaultKind

	// the address and opcode of the faulting instruction. for the four byte
	// F000 instruction the opcode is the first word only
	PC     uint16
	Opcode uint16

	Message string

	// copy of the registers immediately after the fault
	Registers Registers
}

func (f *Fault) Error() string {
	return fmt.Sprintf("cpu: %s at %04x (%04x): %s", f.Kind, f.PC, f.Opcode, f.Message)
}

// Dump returns the fault message followed by the state of every register.
func (f *Fault) Dump() string {
	return fmt.Sprintf("%s\n%s", f.Error(), f.Registers.Dump())
}
