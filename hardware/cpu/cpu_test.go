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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/hardware/tone"
	"github.com/jetsetilly/gopher8/test"
)

func TestReset(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0x6a02, 0x00ff, 0xf201)
	r.step(t, 3)
	test.ExpectSuccess(t, r.fb.HighRes())

	r.mc.Reset()
	test.ExpectEquality(t, r.mc.PC, uint16(memory.ProgramStart))
	test.ExpectEquality(t, r.mc.SP, -1)
	test.ExpectEquality(t, r.mc.V[0xa], uint8(0))
	test.ExpectEquality(t, r.mc.Plane, uint8(1))
	test.ExpectEquality(t, r.mc.Pitch, uint8(tone.DefaultPitch))
	test.ExpectEquality(t, r.mc.Pattern, tone.DefaultPattern)
	test.ExpectFailure(t, r.fb.HighRes())
	test.ExpectEquality(t, r.fb.ActivePlanes(), uint8(1))

	// quirks survive a reset
	test.ExpectSuccess(t, r.mc.Quirks.Has(quirks.VFReset))
}

func TestLoadAndAdd(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0x6a02, 0x7a03, 0x7aff)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0xa], uint8(0x02))
	test.ExpectEquality(t, r.mc.PC, uint16(0x202))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0xa], uint8(0x05))

	// 7XKK wraps and never changes VF
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0xa], uint8(0x04))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(0))
}

func TestAddCarry(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0x60ff, 0x6101, 0x8014, 0x6010, 0x8014)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x00))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))
	r.step(t, 2)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x11))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(0))
}

func TestSubtractFlags(t *testing.T) {
	r := newRig(t, quirks.Classic)

	// equal operands do not borrow
	r.load(0x6005, 0x6105, 0x8015)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x00))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))

	r.mc.Reset()
	r.load(0x6003, 0x6105, 0x8015)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.V[0], uint8(0xfe))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(0))

	r.mc.Reset()
	r.load(0x6003, 0x6105, 0x8017)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x02))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))
}

func TestFlagRegisterAsDestination(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0x6fff, 0x6001, 0x8f04)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))

	r.mc.Reset()
	r.load(0x6f02, 0x6001, 0x8f05)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))
}

func TestLogicVFReset(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0x6f05, 0x600c, 0x610a, 0x8011)
	r.step(t, 4)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x0e))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(0))

	r = newRig(t, quirks.SuperChip)
	r.load(0x6f05, 0x600c, 0x610a, 0x8012, 0x8013)
	r.step(t, 4)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x08))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(5))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x02))
}

func TestShift(t *testing.T) {
	// legacy shift uses VY
	r := newRig(t, quirks.Classic)
	r.load(0x6003, 0x6103, 0x8016, 0x6181, 0x801e)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x01))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))
	r.step(t, 2)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x02))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))

	// otherwise VX is shifted in place
	r = newRig(t, quirks.SuperChip)
	r.load(0x6081, 0x6100, 0x8016, 0x801e)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x40))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x80))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(0))
}

func TestSkips(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0x3000, 0x0000, 0x4001, 0x0000, 0x6105, 0x5010, 0x9010)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x204))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x208))
	r.step(t, 2)
	test.ExpectEquality(t, r.mc.PC, uint16(0x20c))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x210))
}

func TestSkipLongInstruction(t *testing.T) {
	r := newRig(t, quirks.XOChip)
	r.load(0x3000, 0xf000, 0x1234, 0x6001)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x206))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(1))
}

func TestLongIndex(t *testing.T) {
	r := newRig(t, quirks.XOChip)
	r.load(0xf000, 0x1234)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.I, uint16(0x1234))
	test.ExpectEquality(t, r.mc.PC, uint16(0x204))
	test.ExpectEquality(t, r.mc.LastResult.Length, 4)
}

func TestCallAndReturn(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0x2300)
	r.putInstructions(0x300, 0x00ee)

	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x300))
	test.ExpectEquality(t, r.mc.SP, 0)
	test.ExpectEquality(t, r.mc.Stack[0], uint16(0x202))

	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x202))
	test.ExpectEquality(t, r.mc.SP, -1)
}

func TestStackOverflow(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0x2200)
	r.step(t, cpu.StackDepth)
	test.ExpectEquality(t, r.mc.SP, cpu.StackDepth-1)

	f := r.stepFault(t, cpu.StackOverflow)
	test.ExpectEquality(t, f.PC, uint16(0x200))
	test.ExpectEquality(t, f.Opcode, uint16(0x2200))

	// no further instructions are executed
	test.ExpectSuccess(t, r.mc.Step())
	test.ExpectEquality(t, r.mc.LastResult.Length, 0)
}

func TestStackUnderflow(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0x00ee)
	r.stepFault(t, cpu.StackUnderflow)
}

func TestJumps(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0x6004, 0x6210, 0xb220)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.PC, uint16(0x224))

	r = newRig(t, quirks.SuperChip)
	r.load(0x6004, 0x6210, 0xb220)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.PC, uint16(0x230))

	r.putInstructions(0x230, 0x1400)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x400))
}

func TestRandom(t *testing.T) {
	r := newRig(t, quirks.Classic)
	for i := 0; i < 20; i++ {
		r.mc.Reset()
		r.load(0xc00f)
		r.step(t, 1)
		test.ExpectEquality(t, r.mc.V[0]&0xf0, uint8(0))
	}
}

func TestBCD(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0x6a7b, 0xa300, 0xfa33)
	r.step(t, 3)
	test.ExpectEquality(t, r.mem.Read(0x300), uint8(1))
	test.ExpectEquality(t, r.mem.Read(0x301), uint8(2))
	test.ExpectEquality(t, r.mem.Read(0x302), uint8(3))
	test.ExpectEquality(t, r.mc.I, uint16(0x300))
}

func TestStoreAndLoad(t *testing.T) {
	for _, c := range []struct {
		profile quirks.Profile
		I       uint16
	}{
		{quirks.Classic, 0x303},
		{quirks.SuperChip, 0x300},
		{quirks.XOChip, 0x303},
	} {
		r := newRig(t, c.profile)
		r.load(0xa300, 0x6001, 0x6102, 0x6203, 0xf255)
		r.step(t, 5)
		test.ExpectEquality(t, r.mem.Read(0x302), uint8(3), c.profile)
		test.ExpectEquality(t, r.mc.I, c.I, c.profile)

		r.mc.Reset()
		r.load(0xa300, 0xf265)
		r.step(t, 2)
		test.ExpectEquality(t, r.mc.V[1], uint8(2), c.profile)
		test.ExpectEquality(t, r.mc.I, c.I, c.profile)
	}
}

func TestRegisterRanges(t *testing.T) {
	r := newRig(t, quirks.XOChip)

	// save in reverse order
	r.load(0x6011, 0x6122, 0x6233, 0xa300, 0x5202)
	r.step(t, 5)
	test.ExpectEquality(t, r.mem.Read(0x300), uint8(0x33))
	test.ExpectEquality(t, r.mem.Read(0x301), uint8(0x22))
	test.ExpectEquality(t, r.mem.Read(0x302), uint8(0x11))
	test.ExpectEquality(t, r.mc.I, uint16(0x300))

	// load in forward order
	r.mc.Reset()
	r.load(0xa300, 0x5023)
	r.step(t, 2)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x33))
	test.ExpectEquality(t, r.mc.V[2], uint8(0x11))
	test.ExpectEquality(t, r.mc.I, uint16(0x300))

	r.mc.Reset()
	r.load(0x5021)
	r.stepFault(t, cpu.UnrecognisedOpcode)
}

func TestMemoryOutOfBounds(t *testing.T) {
	for _, program := range [][]uint16{
		{0xafff, 0xf155},
		{0xafff, 0xf165},
		{0xaffe, 0xf033},
		{0xafff, 0x5012},
		{0xafff, 0x5013},
	} {
		r := newRig(t, quirks.XOChip)
		r.load(program...)
		r.step(t, 1)
		f := r.stepFault(t, cpu.MemoryOutOfBounds)
		test.ExpectEquality(t, f.PC, uint16(0x202))
	}
}

func TestFlags(t *testing.T) {
	r := newRig(t, quirks.SuperChip)
	r.load(0x6007, 0x6708, 0xf775, 0x6000, 0x6700, 0xf785)
	r.step(t, 6)
	test.ExpectEquality(t, r.mc.V[0], uint8(7))
	test.ExpectEquality(t, r.mc.V[7], uint8(8))

	r.mc.Reset()
	r.load(0xf875)
	r.stepFault(t, cpu.FlagsOutOfRange)

	r.mc.Reset()
	r.load(0xf885)
	r.stepFault(t, cpu.FlagsOutOfRange)
}

func TestUnrecognisedOpcode(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0xffff)
	f := r.stepFault(t, cpu.UnrecognisedOpcode)
	test.ExpectEquality(t, f.Opcode, uint16(0xffff))
	test.ExpectEquality(t, f.PC, uint16(0x200))
	test.ExpectSuccess(t, strings.Contains(f.Dump(), "PC: 0202"))

	for _, op := range []uint16{0x0123, 0x800f, 0x9001, 0xe000, 0xf102, 0xf100, 0xf0ff} {
		r.mc.Reset()
		r.load(op)
		f := r.stepFault(t, cpu.UnrecognisedOpcode)
		test.ExpectEquality(t, f.Opcode, op)
	}
}

func TestExit(t *testing.T) {
	r := newRig(t, quirks.SuperChip)
	r.load(0x00fd, 0x6001)
	r.step(t, 1)
	test.ExpectSuccess(t, r.mc.Halted)
	test.ExpectSuccess(t, r.mc.Fault == nil)
	test.ExpectSuccess(t, r.mc.LastResult.Exit)

	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0))
}

func TestKeyWait(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0xf30a, 0x6001)
	r.step(t, 1)
	waiting, reg := r.mc.WaitingForKey()
	test.ExpectSuccess(t, waiting)
	test.ExpectEquality(t, reg, uint8(3))
	test.ExpectSuccess(t, r.mc.LastResult.KeyWait)

	// stepping while waiting does nothing
	r.step(t, 5)
	test.ExpectEquality(t, r.mc.PC, uint16(0x202))
	test.ExpectEquality(t, r.mc.V[0], uint8(0))

	test.ExpectSuccess(t, r.mc.ResolveKeyWait(0x0a))
	test.ExpectEquality(t, r.mc.V[3], uint8(0x0a))
	test.ExpectFailure(t, r.mc.ResolveKeyWait(0x0b))

	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(1))
}

func TestKeySkips(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.kp.Set(0x05, true)
	r.load(0x6005, 0xe09e, 0x0000, 0xe0a1, 0x6101)
	r.step(t, 2)
	test.ExpectEquality(t, r.mc.PC, uint16(0x206))
	r.step(t, 2)
	test.ExpectEquality(t, r.mc.V[1], uint8(1))
}

func TestTimers(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0x6002, 0xf015, 0xf018, 0xf107)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.DelayTimer, uint8(2))
	test.ExpectEquality(t, r.mc.SoundTimer, uint8(2))

	r.mc.DecrementTimers()
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[1], uint8(1))

	r.mc.DecrementTimers()
	r.mc.DecrementTimers()
	test.ExpectEquality(t, r.mc.DelayTimer, uint8(0))
	test.ExpectEquality(t, r.mc.SoundTimer, uint8(0))
}

func TestIndex(t *testing.T) {
	r := newRig(t, quirks.Classic)
	r.load(0xa300, 0x6010, 0xf01e, 0x600a, 0xf029, 0xf030)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.I, uint16(0x310))
	r.step(t, 2)
	test.ExpectEquality(t, r.mc.I, memory.SmallGlyph(0x0a))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.I, memory.BigGlyph(0x0a))
}

func TestAudio(t *testing.T) {
	r := newRig(t, quirks.XOChip)
	for i := uint16(0); i < tone.PatternSize; i++ {
		r.mem.Write(0x300+i, uint8(i))
	}
	r.mc.AudioChanged = false

	r.load(0xa300, 0xf002, 0x6070, 0xf03a)
	r.step(t, 2)
	test.ExpectSuccess(t, r.mc.AudioChanged)
	test.ExpectEquality(t, r.mc.Pattern[5], uint8(5))

	r.mc.AudioChanged = false
	r.step(t, 2)
	test.ExpectSuccess(t, r.mc.AudioChanged)
	test.ExpectEquality(t, r.mc.Pitch, uint8(0x70))
	test.ExpectEquality(t, r.mc.PatternRate(), tone.Rate(0x70))
}
