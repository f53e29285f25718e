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
	"math/rand"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/test"
)

// faults are logged. tests do not want to fill the central log
type silent struct{}

func (silent) AllowLogging() bool {
	return false
}

type rig struct {
	mem *memory.Memory
	fb  *display.Framebuffer
	kp  *keypad.Keypad
	mc  *cpu.CPU
}

func newRig(t *testing.T, profile quirks.Profile) *rig {
	t.Helper()

	mem, err := memory.New(memory.ClassicSize)
	test.DemandSuccess(t, err)

	r := &rig{
		mem: mem,
		fb:  display.NewFramebuffer(),
		kp:  &keypad.Keypad{},
	}
	r.mc = cpu.NewCPU(r.mem, r.fb, r.kp, rand.New(rand.NewSource(0)), silent{})

	q, err := quirks.Preset(profile)
	test.DemandSuccess(t, err)
	r.mc.SetQuirks(q)

	return r
}

// put instructions into memory starting at origin. returns the address after
// the last instruction
func (r *rig) putInstructions(origin uint16, words ...uint16) uint16 {
	for _, w := range words {
		r.mem.Write(origin, uint8(w>>8))
		r.mem.Write(origin+1, uint8(w))
		origin += 2
	}
	return origin
}

// load the program at the start of program memory
func (r *rig) load(words ...uint16) {
	r.putInstructions(memory.ProgramStart, words...)
}

// step the CPU n times. a fault is a test failure
func (r *rig) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, r.mc.Step(), i)
	}
}

// step the CPU once and expect a fault of the kind specified
func (r *rig) stepFault(t *testing.T, kind cpu.FaultKind) *cpu.Fault {
	t.Helper()
	err := r.mc.Step()
	test.DemandFailure(t, err)
	f, ok := err.(*cpu.Fault)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, f.Kind, kind)
	test.ExpectSuccess(t, r.mc.Halted)
	test.ExpectEquality(t, r.mc.Fault, f)
	return f
}

// count the pixels set in the plane
func (r *rig) count(plane int) int {
	var n int
	for y := 0; y < r.fb.Height(); y++ {
		for x := 0; x < r.fb.Width(); x++ {
			if r.fb.Pixel(plane, x, y) {
				n++
			}
		}
	}
	return n
}
