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
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/hardware/tone"
	"github.com/jetsetilly/gopher8/logger"
)

// the first word of the only four byte instruction
const longInstruction = 0xf000

// skip the next instruction. the F000 instruction is four bytes long
func (mc *CPU) skip() {
	if mc.read16(mc.PC) == longInstruction {
		mc.PC += 4
	} else {
		mc.PC += 2
	}
}

func (mc *CPU) skipIf(cond bool) {
	if cond {
		mc.skip()
	}
}

func (mc *CPU) unrecognised(opcode uint16) error {
	return mc.fault(UnrecognisedOpcode, "%04x", opcode)
}

// execute the decoded opcode. the PC has already been advanced past the
// first word of the instruction
func (mc *CPU) execute(opcode uint16) error {
	x := uint8(opcode>>8) & 0x0f
	y := uint8(opcode>>4) & 0x0f
	n := uint8(opcode) & 0x0f
	kk := uint8(opcode)
	nnn := opcode & 0x0fff

	switch opcode >> 12 {
	case 0x0:
		return mc.executeSystem(opcode)

	case 0x1:
		mc.PC = nnn

	case 0x2:
		if mc.SP >= StackDepth-1 {
			return mc.fault(StackOverflow, "call to %03x", nnn)
		}
		mc.SP++
		mc.Stack[mc.SP] = mc.PC
		mc.PC = nnn

	case 0x3:
		mc.skipIf(mc.V[x] == kk)

	case 0x4:
		mc.skipIf(mc.V[x] != kk)

	case 0x5:
		switch n {
		case 0x0:
			mc.skipIf(mc.V[x] == mc.V[y])
		case 0x2:
			return mc.saveRange(x, y)
		case 0x3:
			return mc.loadRange(x, y)
		default:
			return mc.unrecognised(opcode)
		}

	case 0x6:
		mc.V[x] = kk

	case 0x7:
		mc.V[x] += kk

	case 0x8:
		return mc.executeALU(opcode, x, y, n)

	case 0x9:
		if n != 0 {
			return mc.unrecognised(opcode)
		}
		mc.skipIf(mc.V[x] != mc.V[y])

	case 0xa:
		mc.I = nnn

	case 0xb:
		if mc.Quirks.Has(quirks.JumpWithOffsetRegister) {
			mc.PC = nnn + uint16(mc.V[x])
		} else {
			mc.PC = nnn + uint16(mc.V[0])
		}

	case 0xc:
		mc.V[x] = uint8(mc.rnd.Intn(256)) & kk

	case 0xd:
		mc.draw(x, y, n)

	case 0xe:
		switch kk {
		case 0x9e:
			mc.skipIf(mc.keys.IsPressed(mc.V[x] & 0x0f))
		case 0xa1:
			mc.skipIf(!mc.keys.IsPressed(mc.V[x] & 0x0f))
		default:
			return mc.unrecognised(opcode)
		}

	case 0xf:
		return mc.executeMisc(opcode, x, kk)
	}

	return nil
}

// 0x0000 group. machine control, scrolling and subroutine return
func (mc *CPU) executeSystem(opcode uint16) error {
	n := int(opcode & 0x000f)

	switch opcode & 0xfff0 {
	case 0x00c0:
		mc.disp.ScrollDown(n)
		return nil
	case 0x00d0:
		mc.disp.ScrollUp(n)
		return nil
	}

	switch opcode {
	case 0x00e0:
		mc.disp.Clear()

	case 0x00ee:
		if mc.SP < 0 {
			return mc.fault(StackUnderflow, "return with empty stack")
		}
		mc.PC = mc.Stack[mc.SP]
		mc.SP--

	case 0x00fb:
		mc.disp.ScrollRight(4)

	case 0x00fc:
		mc.disp.ScrollLeft(4)

	case 0x00fd:
		mc.Halted = true
		mc.LastResult.Exit = true
		logger.Logf(mc.perm, "cpu", "program exited at %04x", mc.LastResult.Address)

	case 0x00fe:
		mc.disp.SetResolution(false)

	case 0x00ff:
		mc.disp.SetResolution(true)

	default:
		return mc.unrecognised(opcode)
	}

	return nil
}

// 0x8000 group. register arithmetic and logic. VF is always written after the
// result so that the flag survives when VF is the destination
func (mc *CPU) executeALU(opcode uint16, x uint8, y uint8, n uint8) error {
	vx := mc.V[x]
	vy := mc.V[y]

	switch n {
	case 0x0:
		mc.V[x] = vy

	case 0x1, 0x2, 0x3:
		switch n {
		case 0x1:
			mc.V[x] = vx | vy
		case 0x2:
			mc.V[x] = vx & vy
		case 0x3:
			mc.V[x] = vx ^ vy
		}
		if mc.Quirks.Has(quirks.VFReset) {
			mc.V[VF] = 0
		}

	case 0x4:
		sum := uint16(vx) + uint16(vy)
		mc.V[x] = uint8(sum)
		mc.V[VF] = uint8(sum >> 8)

	case 0x5:
		mc.V[x] = vx - vy
		mc.V[VF] = flag(vx >= vy)

	case 0x6:
		src := vx
		if mc.Quirks.Has(quirks.ShiftLegacy) {
			src = vy
		}
		mc.V[x] = src >> 1
		mc.V[VF] = src & 0x01

	case 0x7:
		mc.V[x] = vy - vx
		mc.V[VF] = flag(vy >= vx)

	case 0xe:
		src := vx
		if mc.Quirks.Has(quirks.ShiftLegacy) {
			src = vy
		}
		mc.V[x] = src << 1
		mc.V[VF] = src >> 7

	default:
		return mc.unrecognised(opcode)
	}

	return nil
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// 0xf000 group. timers, keys, index register, memory transfer and audio
func (mc *CPU) executeMisc(opcode uint16, x uint8, kk uint8) error {
	switch kk {
	case 0x00:
		if x != 0 {
			return mc.unrecognised(opcode)
		}
		mc.I = mc.read16(mc.PC)
		mc.PC += 2
		mc.LastResult.Length = 4

	case 0x01:
		mc.Plane = x & 0x03
		mc.disp.SetActivePlanes(mc.Plane)

	case 0x02:
		if x != 0 {
			return mc.unrecognised(opcode)
		}
		for i := range mc.Pattern {
			mc.Pattern[i] = mc.mem.Read(mc.I + uint16(i))
		}
		mc.AudioChanged = true

	case 0x07:
		mc.V[x] = mc.DelayTimer

	case 0x0a:
		mc.waiting = true
		mc.waitingRegX = x
		mc.LastResult.KeyWait = true

	case 0x15:
		mc.DelayTimer = mc.V[x]

	case 0x18:
		mc.SoundTimer = mc.V[x]

	case 0x1e:
		mc.I += uint16(mc.V[x])

	case 0x29:
		mc.I = memory.SmallGlyph(mc.V[x])

	case 0x30:
		mc.I = memory.BigGlyph(mc.V[x])

	case 0x33:
		v := mc.V[x]
		if err := mc.mem.Store(mc.I, []uint8{v / 100, (v / 10) % 10, v % 10}); err != nil {
			return mc.fault(MemoryOutOfBounds, "%v", err)
		}

	case 0x3a:
		mc.Pitch = mc.V[x]
		mc.AudioChanged = true

	case 0x55:
		if err := mc.mem.Store(mc.I, mc.V[:x+1]); err != nil {
			return mc.fault(MemoryOutOfBounds, "%v", err)
		}
		if mc.Quirks.Has(quirks.MemoryIncrement) {
			mc.I += uint16(x) + 1
		}

	case 0x65:
		b, err := mc.mem.Fetch(mc.I, int(x)+1)
		if err != nil {
			return mc.fault(MemoryOutOfBounds, "%v", err)
		}
		copy(mc.V[:], b)
		if mc.Quirks.Has(quirks.MemoryIncrement) {
			mc.I += uint16(x) + 1
		}

	case 0x75:
		if int(x) >= NumFlags {
			return mc.fault(FlagsOutOfRange, "save of V0..V%X", x)
		}
		copy(mc.Flags[:], mc.V[:x+1])

	case 0x85:
		if int(x) >= NumFlags {
			return mc.fault(FlagsOutOfRange, "load of V0..V%X", x)
		}
		copy(mc.V[:], mc.Flags[:x+1])

	default:
		return mc.unrecognised(opcode)
	}

	return nil
}

// the registers from x to y inclusive, in the order given. x can be greater
// than y
func registerRange(x uint8, y uint8) []uint8 {
	r := make([]uint8, 0, NumRegisters)
	if x <= y {
		for i := x; i <= y; i++ {
			r = append(r, i)
		}
	} else {
		for i := int(x); i >= int(y); i-- {
			r = append(r, uint8(i))
		}
	}
	return r
}

// 5XY2. I is not changed
func (mc *CPU) saveRange(x uint8, y uint8) error {
	regs := registerRange(x, y)
	b := make([]uint8, len(regs))
	for i, r := range regs {
		b[i] = mc.V[r]
	}
	if err := mc.mem.Store(mc.I, b); err != nil {
		return mc.fault(MemoryOutOfBounds, "%v", err)
	}
	return nil
}

// 5XY3. I is not changed
func (mc *CPU) loadRange(x uint8, y uint8) error {
	regs := registerRange(x, y)
	b, err := mc.mem.Fetch(mc.I, len(regs))
	if err != nil {
		return mc.fault(MemoryOutOfBounds, "%v", err)
	}
	for i, r := range regs {
		mc.V[r] = b[i]
	}
	return nil
}

// PatternRate returns the playback rate of the audio pattern for the current
// value of the pitch register.
func (mc *CPU) PatternRate() float32 {
	return tone.Rate(mc.Pitch)
}
