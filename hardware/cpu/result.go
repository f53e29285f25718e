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

import "fmt"

// Result records the outcome of the most recent call to Step().
type Result struct {
	// the address and opcode of the instruction
	Address uint16
	Opcode  uint16

	// number of bytes in the instruction. zero if no instruction was
	// executed
	Length int

	// the instruction drew a sprite
	Drew bool

	// the instruction started a key wait or the CPU was already waiting
	KeyWait bool

	// the instruction was the exit instruction
	Exit bool
}

func (r Result) String() string {
	if r.Length == 0 {
		return fmt.Sprintf("%04x: no instruction", r.Address)
	}
	return fmt.Sprintf("%04x: %04x", r.Address, r.Opcode)
}
