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

// Package disassembly converts CHIP-8 machine code to a human readable form.
//
// The Decode() function disassembles a single instruction. The FromROM()
// and FromMemory() functions disassemble a block of machine code linearly,
// from the first address to the last. Linear disassembly does not follow the
// flow of the program so data embedded in the program will be disassembled as
// though it was code. Words that do not decode to a valid instruction are
// shown with the DW operator.
//
// The mnemonics are those found in most CHIP-8 documentation, extended with
// the SUPER-CHIP and XO-CHIP instructions.
package disassembly
