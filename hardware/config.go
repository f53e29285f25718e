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

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/quirks"
)

// DefaultCyclesPerFrame is the number of instructions executed per frame if
// no other value has been specified.
const DefaultCyclesPerFrame = 15

// Config is the configuration of the virtual machine.
type Config struct {
	Quirks quirks.Quirks

	// maximum number of instructions executed by a single call to Cycle().
	// must be at least one
	CyclesPerFrame int

	// the number of bytes of memory. must be between memory.MinSize and
	// memory.MaxSize
	MemorySize int

	// whether the tone generator is started when the sound timer is set
	SoundEnabled bool

	// seed for the random number generator used by the CXKK instruction. a
	// value of zero means the seed will be taken from the clock
	Seed int64
}

// DefaultConfig returns the configuration of a classic CHIP-8 machine.
func DefaultConfig() Config {
	q, _ := quirks.Preset(quirks.Classic)
	return Config{
		Quirks:         q,
		CyclesPerFrame: DefaultCyclesPerFrame,
		MemorySize:     memory.ClassicSize,
		SoundEnabled:   true,
	}
}

// ProfileConfig returns the default configuration for the profile. Machines
// running the XO-CHIP profile have the larger memory size.
func ProfileConfig(profile quirks.Profile) (Config, error) {
	q, err := quirks.Preset(profile)
	if err != nil {
		return Config{}, curated.Errorf(InvalidConfig, err)
	}
	cfg := DefaultConfig()
	cfg.Quirks = q
	if profile == quirks.XOChip {
		cfg.MemorySize = memory.XOChipSize
	}
	return cfg, nil
}

func (cfg Config) String() string {
	return fmt.Sprintf("quirks=%s cpf=%d mem=%d sound=%v", cfg.Quirks, cfg.CyclesPerFrame, cfg.MemorySize, cfg.SoundEnabled)
}

// Validate checks that the configuration can be applied to a machine.
func (cfg Config) Validate() error {
	if cfg.CyclesPerFrame < 1 {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("cycles per frame must be at least 1 (%d)", cfg.CyclesPerFrame))
	}
	if cfg.MemorySize < memory.MinSize || cfg.MemorySize > memory.MaxSize {
		return curated.Errorf(InvalidConfig, curated.Errorf(memory.InvalidSize, cfg.MemorySize, memory.MinSize, memory.MaxSize))
	}
	return nil
}
