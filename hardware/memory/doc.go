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

// Package memory implements the flat, byte addressable memory of the CHIP-8
// virtual machine. The bottom 512 bytes are reserved for the interpreter and
// hold the built-in font data. Programs are loaded at ProgramStart.
//
// The size of memory is configurable. The original CHIP-8 and SUPER-CHIP
// machines have 4096 bytes and XO-CHIP machines have 65536 bytes.
package memory
