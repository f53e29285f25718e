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

import "fmt"

// Decode the instruction with the opcode at the address. The next argument is
// the word following the opcode and is only used by the four byte F000
// instruction.
func Decode(address uint16, opcode uint16, next uint16) Entry {
	e := Entry{
		Address:  address,
		Opcode:   opcode,
		Length:   2,
		Bytecode: fmt.Sprintf("%04x", opcode),
		Valid:    true,
	}

	x := (opcode >> 8) & 0x0f
	y := (opcode >> 4) & 0x0f
	n := opcode & 0x0f
	kk := opcode & 0xff
	nnn := opcode & 0x0fff

	set := func(operator string, format string, args ...any) {
		e.Operator = operator
		if format != "" {
			e.Operand = fmt.Sprintf(format, args...)
		}
	}

	switch opcode >> 12 {
	case 0x0:
		switch {
		case opcode&0xfff0 == 0x00c0:
			set("SCD", "%d", n)
		case opcode&0xfff0 == 0x00d0:
			set("SCU", "%d", n)
		case opcode == 0x00e0:
			set("CLS", "")
		case opcode == 0x00ee:
			set("RET", "")
		case opcode == 0x00fb:
			set("SCR", "")
		case opcode == 0x00fc:
			set("SCL", "")
		case opcode == 0x00fd:
			set("EXIT", "")
		case opcode == 0x00fe:
			set("LOW", "")
		case opcode == 0x00ff:
			set("HIGH", "")
		default:
			e.Valid = false
		}
	case 0x1:
		set("JP", "%#03x", nnn)
	case 0x2:
		set("CALL", "%#03x", nnn)
	case 0x3:
		set("SE", "V%X, %#02x", x, kk)
	case 0x4:
		set("SNE", "V%X, %#02x", x, kk)
	case 0x5:
		switch n {
		case 0x0:
			set("SE", "V%X, V%X", x, y)
		case 0x2:
			set("SAVE", "V%X - V%X", x, y)
		case 0x3:
			set("LOAD", "V%X - V%X", x, y)
		default:
			e.Valid = false
		}
	case 0x6:
		set("LD", "V%X, %#02x", x, kk)
	case 0x7:
		set("ADD", "V%X, %#02x", x, kk)
	case 0x8:
		ops := map[uint16]string{
			0x0: "LD", 0x1: "OR", 0x2: "AND", 0x3: "XOR", 0x4: "ADD",
			0x5: "SUB", 0x6: "SHR", 0x7: "SUBN", 0xe: "SHL",
		}
		if op, ok := ops[n]; ok {
			set(op, "V%X, V%X", x, y)
		} else {
			e.Valid = false
		}
	case 0x9:
		if n == 0 {
			set("SNE", "V%X, V%X", x, y)
		} else {
			e.Valid = false
		}
	case 0xa:
		set("LD", "I, %#03x", nnn)
	case 0xb:
		set("JP", "V0, %#03x", nnn)
	case 0xc:
		set("RND", "V%X, %#02x", x, kk)
	case 0xd:
		set("DRW", "V%X, V%X, %d", x, y, n)
	case 0xe:
		switch kk {
		case 0x9e:
			set("SKP", "V%X", x)
		case 0xa1:
			set("SKNP", "V%X", x)
		default:
			e.Valid = false
		}
	case 0xf:
		decodeMisc(&e, x, kk, next, set)
	}

	if !e.Valid {
		e.Operator = "DW"
		e.Operand = fmt.Sprintf("%#04x", opcode)
	}

	return e
}

func decodeMisc(e *Entry, x uint16, kk uint16, next uint16, set func(string, string, ...any)) {
	switch kk {
	case 0x00:
		if x != 0 {
			e.Valid = false
			return
		}
		e.Length = 4
		e.Bytecode = fmt.Sprintf("%04x %04x", e.Opcode, next)
		set("LD", "I, %#04x", next)
	case 0x01:
		set("PLANE", "%d", x)
	case 0x02:
		if x != 0 {
			e.Valid = false
			return
		}
		set("AUDIO", "")
	case 0x07:
		set("LD", "V%X, DT", x)
	case 0x0a:
		set("LD", "V%X, K", x)
	case 0x15:
		set("LD", "DT, V%X", x)
	case 0x18:
		set("LD", "ST, V%X", x)
	case 0x1e:
		set("ADD", "I, V%X", x)
	case 0x29:
		set("LD", "F, V%X", x)
	case 0x30:
		set("LD", "HF, V%X", x)
	case 0x33:
		set("LD", "B, V%X", x)
	case 0x3a:
		set("PITCH", "V%X", x)
	case 0x55:
		set("LD", "[I], V%X", x)
	case 0x65:
		set("LD", "V%X, [I]", x)
	case 0x75:
		set("LD", "R, V%X", x)
	case 0x85:
		set("LD", "V%X, R", x)
	default:
		e.Valid = false
	}
}
