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
	"strings"

	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/hardware/tone"
)

// Register counts.
const (
	NumRegisters = 16
	StackDepth   = 16
	NumFlags     = 8
)

// the flag register
const VF = 0xf

// Registers is the complete register state of the CPU. It is kept separate
// from the CPU type so that it can be copied cheaply, for example when
// creating a Fault.
type Registers struct {
	PC uint16
	I  uint16
	V  [NumRegisters]uint8

	// SP is the index of the top of the stack. an empty stack is indicated
	// by a value of -1
	Stack [StackDepth]uint16
	SP    int

	DelayTimer uint8
	SoundTimer uint8

	// RPL user flags. saved and loaded with FX75 and FX85
	Flags [NumFlags]uint8

	// the bit-plane selection mask. set with FN01
	Plane uint8

	// the audio pattern and pitch register. set with F002 and FX3A
	Pattern tone.Pattern
	Pitch   uint8

	Quirks quirks.Quirks
}

// String returns a single line summary of the registers.
func (r Registers) String() string {
	return fmt.Sprintf("PC=%04x I=%04x SP=%d DT=%02x ST=%02x V=[% 02x]",
		r.PC, r.I, r.SP, r.DelayTimer, r.SoundTimer, r.V[:])
}

// Dump returns a multi-line description of every register.
func (r Registers) Dump() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC: %04x  I: %04x\n", r.PC, r.I))
	for i := 0; i < NumRegisters; i += 4 {
		s.WriteString(fmt.Sprintf("V%X: %02x  V%X: %02x  V%X: %02x  V%X: %02x\n",
			i, r.V[i], i+1, r.V[i+1], i+2, r.V[i+2], i+3, r.V[i+3]))
	}
	s.WriteString(fmt.Sprintf("SP: %d  stack: [", r.SP))
	for i := 0; i <= r.SP && i < StackDepth; i++ {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%04x", r.Stack[i]))
	}
	s.WriteString("]\n")
	s.WriteString(fmt.Sprintf("delay: %02x  sound: %02x\n", r.DelayTimer, r.SoundTimer))
	s.WriteString(fmt.Sprintf("flags: [% 02x]\n", r.Flags[:]))
	s.WriteString(fmt.Sprintf("plane: %02b  pitch: %d\n", r.Plane, r.Pitch))
	s.WriteString(fmt.Sprintf("quirks: %s\n", r.Quirks))
	return s.String()
}
