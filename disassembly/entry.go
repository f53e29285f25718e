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
	"strings"
)

// Entry is a disassembled instruction.
type Entry struct {
	Address uint16

	// the first word of the instruction
	Opcode uint16

	// the number of bytes in the instruction. the F000 instruction is four
	// bytes long, every other instruction is two bytes long
	Length int

	// the instruction bytes as a string of hex digits
	Bytecode string

	Operator string
	Operand  string

	// whether the instruction is a valid instruction
	Valid bool
}

func (e Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// the width of the operator column in the output of the Write() functions
const operatorWidth = 5

// Line returns the entry as a single line suitable for a listing. The
// bytecode column is included if requested.
func (e Entry) Line(bytecode bool) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%04x ", e.Address))
	if bytecode {
		b.WriteString(fmt.Sprintf("%-9s ", e.Bytecode))
	}
	b.WriteString(fmt.Sprintf("%-*s", operatorWidth, e.Operator))
	if e.Operand != "" {
		b.WriteString(" ")
		b.WriteString(e.Operand)
	}
	return strings.TrimRight(b.String(), " ")
}
