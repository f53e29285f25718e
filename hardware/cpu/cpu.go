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
	"math/rand"

	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/hardware/tone"
	"github.com/jetsetilly/gopher8/logger"
)

// CPU is the interpreter of the virtual machine.
type CPU struct {
	Registers

	mem  *memory.Memory
	disp Display
	keys KeySource
	rnd  *rand.Rand

	// permission used for all log entries
	perm logger.Permission

	// the register waiting for a key press. only valid if waiting is true
	waiting     bool
	waitingRegX uint8

	// the CPU has stopped. if Fault is nil then the program exited normally
	Halted bool
	Fault  *Fault

	LastResult Result

	// AudioChanged is set whenever the pattern or pitch registers change. it
	// is never reset by the CPU
	AudioChanged bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// is reset before it is returned.
func NewCPU(mem *memory.Memory, disp Display, keys KeySource, rnd *rand.Rand, perm logger.Permission) *CPU {
	if perm == nil {
		perm = logger.Allow
	}
	mc := &CPU{
		mem:  mem,
		disp: disp,
		keys: keys,
		rnd:  rnd,
		perm: perm,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return mc.Registers.String()
}

// Plumb a new memory into the CPU. Used when the memory size changes.
func (mc *CPU) Plumb(mem *memory.Memory) {
	mc.mem = mem
}

// Reset all registers to their initial state and return the display to low
// resolution mode. Quirks are not changed. Memory is not touched.
func (mc *CPU) Reset() {
	q := mc.Quirks
	mc.Registers = Registers{
		PC:      memory.ProgramStart,
		SP:      -1,
		Plane:   0x01,
		Pattern: tone.DefaultPattern,
		Pitch:   tone.DefaultPitch,
		Quirks:  q,
	}

	mc.waiting = false
	mc.waitingRegX = 0
	mc.Halted = false
	mc.Fault = nil
	mc.LastResult = Result{Address: mc.PC}
	mc.AudioChanged = true

	mc.disp.SetActivePlanes(mc.Plane)
	mc.disp.SetResolution(false)
}

// SetQuirks changes the quirks table. Takes effect from the next instruction.
func (mc *CPU) SetQuirks(q quirks.Quirks) {
	mc.Quirks = q
}

// Snapshot returns a copy of the registers.
func (mc *CPU) Snapshot() Registers {
	return mc.Registers
}

// WaitingForKey returns true if the CPU is waiting for a key press. The
// register the key will be stored in is also returned.
func (mc *CPU) WaitingForKey() (bool, uint8) {
	return mc.waiting, mc.waitingRegX
}

// ResolveKeyWait ends the key wait by storing the key in the waiting
// register. Returns false if the CPU was not waiting for a key.
func (mc *CPU) ResolveKeyWait(key uint8) bool {
	if !mc.waiting {
		return false
	}
	mc.V[mc.waitingRegX] = key & 0x0f
	mc.waiting = false
	return true
}

// DecrementTimers reduces the delay and sound timers by one, if they are
// not already zero.
func (mc *CPU) DecrementTimers() {
	if mc.DelayTimer > 0 {
		mc.DelayTimer--
	}
	if mc.SoundTimer > 0 {
		mc.SoundTimer--
	}
}

// read a big endian 16 bit value. memory wraps
func (mc *CPU) read16(address uint16) uint16 {
	return uint16(mc.mem.Read(address))<<8 | uint16(mc.mem.Read(address+1))
}

// halt with a fault. the fault is logged and returned
func (mc *CPU) fault(kind FaultKind, format string, args ...any) error {
	f := &Fault{
		Kind:      kind,
		PC:        mc.LastResult.Address,
		Opcode:    mc.LastResult.Opcode,
		Message:   fmt.Sprintf(format, args...),
		Registers: mc.Registers,
	}
	mc.Halted = true
	mc.Fault = f
	logger.Log(mc.perm, "cpu", f)
	return f
}

// Step executes a single instruction. Nothing happens if the CPU is halted or
// waiting for a key. A fault during execution is returned as an error of type
// *Fault.
func (mc *CPU) Step() error {
	if mc.Halted {
		mc.LastResult = Result{Address: mc.PC}
		return nil
	}

	if mc.waiting {
		mc.LastResult = Result{Address: mc.PC, KeyWait: true}
		return nil
	}

	opcode := mc.read16(mc.PC)
	mc.LastResult = Result{
		Address: mc.PC,
		Opcode:  opcode,
		Length:  2,
	}
	mc.PC += 2

	return mc.execute(opcode)
}
