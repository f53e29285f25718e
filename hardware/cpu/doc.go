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

// Package cpu implements the interpreter of the CHIP-8 virtual machine and its
// SUPER-CHIP and XO-CHIP extensions. The three dialects share one opcode space
// and the differences in behaviour are controlled by the quirks table.
//
// The CPU type requires an instance of memory.Memory, an implementation of
// the Display interface and an implementation of the KeySource interface.
//
//	mc := cpu.NewCPU(mem, fb, kp, rand.New(rand.NewSource(seed)), logger.Allow)
//	mc.Reset()
//
// The Step() function executes a single instruction. The LastResult field can
// be probed for information about the instruction most recently executed. It
// is the responsibility of the caller (in this project the Machine type in the
// hardware package) to run the correct number of instructions per frame and
// to decrement the timers.
//
// An instruction that cannot be executed is a fault. A fault halts the CPU
// and is recorded in the Fault field. A halted CPU will execute no further
// instructions until it is Reset().
//
// The FX0A instruction puts the CPU into a key wait state. While waiting, calls
// to Step() do nothing. The wait is ended by a call to ResolveKeyWait().
package cpu
