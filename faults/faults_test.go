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

package faults_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/faults"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func fault(t *testing.T) (*cpu.Fault, *memory.Memory) {
	t.Helper()

	mem, err := memory.New(memory.ClassicSize)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.Store(memory.ProgramStart, []uint8{0x60, 0x01, 0x00, 0xe0, 0xff, 0xff}))

	flt := &cpu.Fault{
		Kind:    cpu.UnrecognisedOpcode,
		PC:      0x204,
		Opcode:  0xffff,
		Message: "test",
	}
	flt.Registers.PC = 0x204
	flt.Registers.V[0] = 0x01
	flt.Registers.SP = -1

	return flt, mem
}

func TestReport(t *testing.T) {
	flt, mem := fault(t)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, faults.Report(w, flt, mem, false))

	s := w.String()
	test.ExpectSuccess(t, strings.Contains(s, "unrecognised opcode"))
	test.ExpectSuccess(t, strings.Contains(s, "> 0204"))
	test.ExpectSuccess(t, strings.Contains(s, "  0200"))
	test.ExpectSuccess(t, strings.Contains(s, "V0: 01"))

	// the faulting instruction is the last line of the disassembly
	lines := strings.Split(s, "\n")
	var last string
	for _, l := range lines {
		if strings.HasPrefix(l, "  02") || strings.HasPrefix(l, "> 02") {
			last = l
		}
	}
	test.ExpectSuccess(t, strings.HasPrefix(last, "> 0204"))
}

func TestReportWithoutMemory(t *testing.T) {
	flt, _ := fault(t)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, faults.Report(w, flt, nil, false))
	test.ExpectFailure(t, strings.Contains(w.String(), "> 0204"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "unrecognised opcode"))

	test.ExpectFailure(t, faults.Report(w, nil, nil, false))
}

func TestGraph(t *testing.T) {
	flt, _ := fault(t)

	w := &test.CompareWriter{}
	faults.Graph(w, flt.Registers)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}

func TestColourReport(t *testing.T) {
	flt, mem := fault(t)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, faults.Report(w, flt, mem, true))
	test.ExpectSuccess(t, strings.Contains(w.String(), "unrecognised opcode"))
}
