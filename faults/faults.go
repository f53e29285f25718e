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

package faults

import (
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// the number of instructions shown before the faulting instruction
const context = 4

// the Render() function of each style. the plain function is used when
// colour is not wanted
type styles struct {
	header      func(...string) string
	instruction func(...string) string
	faulting    func(...string) string
	cpu         func(...string) string
}

func plain(strs ...string) string {
	return strings.Join(strs, " ")
}

// ANSI colours: 1 red, 3 yellow, 4 blue, 7 white
func newStyles(colour bool) styles {
	if !colour {
		return styles{header: plain, instruction: plain, faulting: plain, cpu: plain}
	}
	return styles{
		header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)).Render,
		instruction: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3)).Render,
		faulting:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(1)).Render,
		cpu:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)).Render,
	}
}

// Report writes a description of the fault to the io.Writer. The memory
// argument can be nil, in which case the disassembly is not included.
func Report(output io.Writer, flt *cpu.Fault, mem *memory.Memory, colour bool) error {
	if flt == nil {
		return curated.Errorf("faults: no fault to report")
	}

	sty := newStyles(colour)

	s := strings.Builder{}
	s.WriteString(sty.header(fmt.Sprintf(" %s ", flt.Kind)))
	s.WriteString("\n")
	s.WriteString(flt.Error())
	s.WriteString("\n\n")

	if mem != nil {
		for _, e := range surrounding(mem, flt.PC) {
			if e.Address == flt.PC {
				s.WriteString(sty.faulting(fmt.Sprintf("> %s", e.Line(true))))
			} else {
				s.WriteString(sty.instruction(fmt.Sprintf("  %s", e.Line(true))))
			}
			s.WriteString("\n")
		}
		s.WriteString("\n")
	}

	for _, l := range strings.Split(strings.TrimSuffix(flt.Registers.Dump(), "\n"), "\n") {
		s.WriteString(sty.cpu(l))
		s.WriteString("\n")
	}

	if _, err := io.WriteString(output, s.String()); err != nil {
		return curated.Errorf("faults: %v", err)
	}

	return nil
}

// disassembly of the instructions leading up to and including the
// instruction at the PC. the start address is found by stepping back in two
// byte increments, which may be inaccurate if the program contains four byte
// instructions or data
func surrounding(mem *memory.Memory, pc uint16) []disassembly.Entry {
	from := int(pc) - context*2
	if from < memory.ProgramStart {
		from = memory.ProgramStart
	}
	if from > int(pc) {
		from = int(pc)
	}

	var entries []disassembly.Entry
	for a := from; a <= int(pc); {
		e := disassembly.At(mem, uint16(a))

		// a long instruction that overlaps the PC is dropped so that the
		// faulting instruction is always the final entry
		if a < int(pc) && a+e.Length > int(pc) {
			a = int(pc)
			continue
		}

		entries = append(entries, e)
		a += e.Length
	}
	return entries
}

// Graph writes the register state to the io.Writer as a graphviz document.
func Graph(output io.Writer, regs cpu.Registers) {
	memviz.Map(output, &regs)
}
