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

package hardware

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/hardware/tone"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinel error patterns.
const (
	NoROM         = "machine: no ROM"
	InvalidConfig = "machine: invalid configuration: %v"
)

// Renderer is implemented by anything that presents the framebuffer to the
// user. Render() is called after a cycle in which the framebuffer changed.
type Renderer interface {
	Render(fb *display.Framebuffer) error
}

// Machine is the CHIP-8 virtual machine.
type Machine struct {
	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Framebuffer
	Keypad  *keypad.Keypad

	cfg Config

	// the most recently loaded program. a copy of the data given to Load()
	rom []uint8

	renderer Renderer
	tone     tone.Generator

	// whether the tone generator has been started
	toneActive bool

	// the sound timer at the end of the previous cycle. the tone is only
	// started when the sound timer changes from zero to a nonzero value
	lastSoundTimer uint8

	// the number of calls to Cycle() since the last Load()
	Frames int

	// called after every instruction if not nil
	tracer func(cpu.Result)

	logging *logger.Switch
}

// NewMachine creates a new virtual machine. The renderer and generator
// arguments can be nil. The machine is halted until a ROM is loaded.
func NewMachine(cfg Config, renderer Renderer, gen tone.Generator) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		cfg:      cfg,
		Display:  display.NewFramebuffer(),
		Keypad:   &keypad.Keypad{},
		renderer: renderer,
		tone:     gen,
		logging:  logger.NewSwitch(true),
	}

	var err error
	m.Mem, err = memory.New(cfg.MemorySize)
	if err != nil {
		return nil, curated.Errorf(InvalidConfig, err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m.CPU = cpu.NewCPU(m.Mem, m.Display, m.Keypad, rand.New(rand.NewSource(seed)), m)
	m.CPU.SetQuirks(cfg.Quirks)
	m.CPU.Halted = true

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// AllowLogging implements the logger.Permission interface.
func (m *Machine) AllowLogging() bool {
	return m.logging.AllowLogging()
}

// SetLogging turns logging on or off for the machine.
func (m *Machine) SetLogging(allow bool) {
	m.logging.Set(allow)
}

// SetTracer sets a function to be called after every instruction. A value of
// nil removes the tracer.
func (m *Machine) SetTracer(tracer func(cpu.Result)) {
	m.tracer = tracer
}

// Config returns a copy of the current configuration.
func (m *Machine) Config() Config {
	return m.cfg
}

// Halted returns true if the machine is not executing instructions.
func (m *Machine) Halted() bool {
	return m.CPU.Halted
}

// Fault returns the most recent fault or nil if there has been no fault.
func (m *Machine) Fault() *cpu.Fault {
	return m.CPU.Fault
}

// Load the ROM and reset the machine. The ROM is copied to memory and
// truncated if necessary. The RPL flags are cleared.
func (m *Machine) Load(rom []uint8) error {
	if len(rom) == 0 {
		m.silence()
		m.CPU.Halted = true
		return curated.Errorf(NoROM)
	}

	m.rom = make([]uint8, len(rom))
	copy(m.rom, rom)

	m.reset(false)
	logger.Logf(m, "machine", "loaded %d bytes", len(m.rom))

	return nil
}

// Reset reloads the current ROM. The RPL flags survive a reset.
func (m *Machine) Reset() error {
	if len(m.rom) == 0 {
		return curated.Errorf(NoROM)
	}
	m.reset(true)
	logger.Log(m, "machine", "reset")
	return nil
}

// reset all state and copy the program into memory. the RPL flags are only
// preserved if requested
func (m *Machine) reset(preserveFlags bool) {
	flags := m.CPU.Flags

	m.silence()
	m.Mem.Reset()
	m.CPU.Reset()
	m.Display.Reset()
	m.Frames = 0
	m.lastSoundTimer = 0

	if preserveFlags {
		m.CPU.Flags = flags
	}

	n := m.Mem.LoadProgram(m.rom)
	if n < len(m.rom) {
		logger.Logf(m, "machine", "ROM truncated to %d bytes", n)
	}

	if pp, ok := m.tone.(tone.PatternPlayer); ok {
		pp.SetPattern(m.CPU.Pattern, m.CPU.PatternRate())
	}
	m.CPU.AudioChanged = false
}

// NotifyKey updates the state of a key. A key press ends any key wait in
// progress.
func (m *Machine) NotifyKey(key uint8, pressed bool) {
	if !m.Keypad.Set(key, pressed) {
		return
	}
	if pressed {
		m.CPU.ResolveKeyWait(key)
	}
}

// SetQuirks changes the quirks table. The change is effective from the next
// instruction. The machine is not reset.
func (m *Machine) SetQuirks(q quirks.Quirks) {
	m.cfg.Quirks = q
	m.CPU.SetQuirks(q)
}

// SetCyclesPerFrame changes the number of instructions executed by each call to
// Cycle(). The value must be at least one.
func (m *Machine) SetCyclesPerFrame(n int) error {
	cfg := m.cfg
	cfg.CyclesPerFrame = n
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg.CyclesPerFrame = n
	return nil
}

// SetSoundEnabled turns the tone generator on or off. A tone that is sounding
// is stopped immediately when sound is disabled.
func (m *Machine) SetSoundEnabled(enabled bool) {
	m.cfg.SoundEnabled = enabled
	if !enabled {
		m.silence()
	}
}

// SetMemorySize replaces memory with a new memory of the specified size. The
// machine is reset and the current ROM is reloaded. If the size is invalid
// nothing is changed.
func (m *Machine) SetMemorySize(n int) error {
	cfg := m.cfg
	cfg.MemorySize = n
	if err := cfg.Validate(); err != nil {
		return err
	}

	mem, err := memory.New(n)
	if err != nil {
		return curated.Errorf(InvalidConfig, err)
	}

	m.cfg.MemorySize = n
	m.Mem = mem
	m.CPU.Plumb(mem)

	logger.Logf(m, "machine", "memory size is now %d bytes", n)

	if len(m.rom) == 0 {
		m.CPU.Reset()
		m.CPU.Halted = true
		return nil
	}

	m.reset(true)
	return nil
}

// SetConfig applies a complete configuration. The configuration is validated
// before anything is changed. Memory is only replaced (and the machine reset)
// if the memory size has changed.
func (m *Machine) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	m.SetQuirks(cfg.Quirks)
	m.cfg.CyclesPerFrame = cfg.CyclesPerFrame
	m.SetSoundEnabled(cfg.SoundEnabled)
	m.cfg.Seed = cfg.Seed

	if cfg.MemorySize != m.cfg.MemorySize {
		return m.SetMemorySize(cfg.MemorySize)
	}

	return nil
}

// stop the tone generator if it is sounding
func (m *Machine) silence() {
	if m.toneActive {
		m.toneActive = false
		if m.tone != nil {
			m.tone.Stop()
		}
	}
}

// Cycle runs one frame of emulation. Up to CyclesPerFrame instructions are
// executed, followed by a single decrement of the timers. The batch ends
// early if the machine halts, starts waiting for a key, or draws a sprite when
// the DisplayWait quirk is set.
//
// Cycle does nothing on a halted machine other than stop a sounding tone. The
// timers, the frame count and the display are left as they were at the
// moment of the halt until the machine is reset or a new ROM is loaded.
//
// Faults are not returned by Cycle(). They are available with the Fault()
// function. Errors from the renderer or the tone generator are returned.
func (m *Machine) Cycle() error {
	if m.CPU.Halted {
		m.silence()
		return nil
	}

	for i := 0; i < m.cfg.CyclesPerFrame; i++ {
		if m.CPU.Halted {
			break // for loop
		}
		if waiting, _ := m.CPU.WaitingForKey(); waiting {
			break // for loop
		}

		err := m.CPU.Step()
		if m.tracer != nil {
			m.tracer(m.CPU.LastResult)
		}
		if err != nil {
			break // for loop
		}

		if m.CPU.LastResult.Drew && m.cfg.Quirks.Has(quirks.DisplayWait) {
			break // for loop
		}
	}

	if m.CPU.AudioChanged {
		m.CPU.AudioChanged = false
		if pp, ok := m.tone.(tone.PatternPlayer); ok {
			pp.SetPattern(m.CPU.Pattern, m.CPU.PatternRate())
		}
	}

	if m.lastSoundTimer == 0 && m.CPU.SoundTimer > 0 && !m.toneActive && m.cfg.SoundEnabled {
		m.toneActive = true
		if m.tone != nil {
			m.tone.Start(m.CPU.PatternRate())
		}
	}

	m.CPU.DecrementTimers()

	if m.CPU.SoundTimer == 0 {
		m.silence()
	}
	m.lastSoundTimer = m.CPU.SoundTimer

	m.Frames++

	if fs, ok := m.tone.(tone.FrameSync); ok {
		if err := fs.EndFrame(); err != nil {
			return fmt.Errorf("machine: %w", err)
		}
	}

	if m.Display.Dirty() {
		m.Display.ResetDirty()
		if m.renderer != nil {
			if err := m.renderer.Render(m.Display); err != nil {
				return fmt.Errorf("machine: %w", err)
			}
		}
	}

	return nil
}

// ToneActive returns true if the tone generator has been started.
func (m *Machine) ToneActive() bool {
	return m.toneActive
}
