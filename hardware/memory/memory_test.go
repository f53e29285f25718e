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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestNew(t *testing.T) {
	mem, err := memory.New(memory.ClassicSize)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.Size(), 4096)

	_, err = memory.New(memory.MinSize - 1)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidSize))
	_, err = memory.New(memory.MaxSize + 1)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidSize))
}

func TestFonts(t *testing.T) {
	mem, err := memory.New(memory.ClassicSize)
	test.DemandSuccess(t, err)

	// glyph for zero
	test.ExpectEquality(t, memory.SmallGlyph(0), uint16(0))
	test.ExpectEquality(t, mem.Read(0), uint8(0xf0))

	// only the low nibble is used
	test.ExpectEquality(t, memory.SmallGlyph(0x1a), memory.SmallGlyph(0x0a))
	test.ExpectEquality(t, memory.SmallGlyph(0x0a), uint16(50))

	// the big font follows the small font
	test.ExpectEquality(t, memory.BigGlyph(0), uint16(80))
	test.ExpectEquality(t, memory.BigGlyph(1), uint16(90))
	test.ExpectEquality(t, mem.Read(memory.BigGlyph(0)), uint8(0x3c))

	// fonts lie below the program area
	test.ExpectSuccess(t, int(memory.BigGlyph(0xf))+memory.BigGlyphSize <= memory.ProgramStart)
}

func TestReadWriteWrap(t *testing.T) {
	mem, err := memory.New(memory.ClassicSize)
	test.DemandSuccess(t, err)

	mem.Write(0x1000, 0xab)
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0xab))
	test.ExpectEquality(t, mem.Read(0x2000), uint8(0xab))
}

func TestBlocks(t *testing.T) {
	mem, err := memory.New(memory.ClassicSize)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, mem.Store(0xffd, []uint8{1, 2, 3}))
	b, err := mem.Fetch(0xffd, 3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(b), 3)
	test.ExpectEquality(t, b[2], uint8(3))

	err = mem.Store(0xffe, []uint8{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))
	test.ExpectEquality(t, mem.Read(0xffe), uint8(2))

	_, err = mem.Fetch(0xfff, 2)
	test.ExpectFailure(t, err)
}

func TestLoadProgram(t *testing.T) {
	mem, err := memory.New(memory.ClassicSize)
	test.DemandSuccess(t, err)

	n := mem.LoadProgram([]uint8{0x6a, 0x02})
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, mem.Read(memory.ProgramStart), uint8(0x6a))

	// a program too large for memory is truncated
	n = mem.LoadProgram(make([]uint8, memory.ClassicSize))
	test.ExpectEquality(t, n, memory.ClassicSize-memory.ProgramStart)

	mem.Reset()
	test.ExpectEquality(t, mem.Read(memory.ProgramStart), uint8(0))
	test.ExpectEquality(t, mem.Read(0), uint8(0xf0))
}

func TestPeek(t *testing.T) {
	mem, err := memory.New(memory.ClassicSize)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(mem.Peek(0, 5)), 5)
	test.ExpectEquality(t, len(mem.Peek(0xffe, 0x2000)), 2)
	test.ExpectEquality(t, len(mem.Peek(5, 5)), 0)
}
