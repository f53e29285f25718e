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

package preferences

import (
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Preferences defines and collates all the preference values used by the
// emulation.
type Preferences struct {
	dsk *prefs.Disk

	// name of the profile that the quirks were last set from. the quirks
	// can be changed individually after the profile has been set
	Profile prefs.String

	// one value for each quirk. indexed by quirks.Quirk
	Quirks [quirks.NumQuirks]prefs.Bool

	CyclesPerFrame prefs.Int
	MemorySize     prefs.Int
	Sound          prefs.Bool

	// zero means that the random number generator is seeded from the clock
	Seed prefs.Int

	// colours used by the frontends
	Palette *prefs.Generic
	palette display.Palette

	// the configuration and palette as built from the values above. updated
	// by the post hooks
	live        atomic.Value // hardware.Config
	livePalette atomic.Value // display.Palette

	changed atomic.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file, which is
// created if it does not exist.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.Palette = prefs.NewGeneric(
		func(v prefs.Value) error {
			s := v.(string)
			if s == "" {
				p.palette = display.DefaultPalette
			} else {
				pal, err := display.ParsePalette(s)
				if err != nil {
					return err
				}
				p.palette = pal
			}
			p.livePalette.Store(p.palette)
			p.changed.Store(true)
			return nil
		},
		func() prefs.Value {
			return p.palette.String()
		},
	)

	p.Profile.SetHookPre(func(v prefs.Value) error {
		_, err := quirks.ParseProfile(v.(string))
		return err
	})
	p.CyclesPerFrame.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("cycles per frame must be at least 1 (%d)", v.(int))
		}
		return nil
	})
	p.MemorySize.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		if n < memory.MinSize || n > memory.MaxSize {
			return curated.Errorf(memory.InvalidSize, n, memory.MinSize, memory.MaxSize)
		}
		return nil
	})

	update := func(_ prefs.Value) error {
		p.update()
		return nil
	}
	p.Profile.SetHookPost(update)
	p.CyclesPerFrame.SetHookPost(update)
	p.MemorySize.SetHookPost(update)
	p.Sound.SetHookPost(update)
	p.Seed.SetHookPost(update)
	for i := range p.Quirks {
		p.Quirks[i].SetHookPost(update)
	}

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.profile", &p.Profile)
	if err != nil {
		return nil, err
	}
	for q := quirks.Quirk(0); q < quirks.NumQuirks; q++ {
		err = p.dsk.Add(fmt.Sprintf("hardware.quirks.%s", q), &p.Quirks[q])
		if err != nil {
			return nil, err
		}
	}
	err = p.dsk.Add("hardware.cyclesPerFrame", &p.CyclesPerFrame)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.memorySize", &p.MemorySize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.sound", &p.Sound)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.seed", &p.Seed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.palette", p.Palette)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	// values loaded from disk are not a change
	p.changed.Store(false)

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() error {
	if err := p.SetProfile(quirks.Classic); err != nil {
		return err
	}
	if err := p.CyclesPerFrame.Set(hardware.DefaultCyclesPerFrame); err != nil {
		return err
	}
	if err := p.Sound.Set(true); err != nil {
		return err
	}
	if err := p.Seed.Set(0); err != nil {
		return err
	}
	return p.Palette.Set("")
}

// SetProfile sets the profile and changes the quirks and the memory size to
// the values required by the profile.
func (p *Preferences) SetProfile(profile quirks.Profile) error {
	cfg, err := hardware.ProfileConfig(profile)
	if err != nil {
		return err
	}
	if err := p.Profile.Set(string(profile)); err != nil {
		return err
	}
	for q := quirks.Quirk(0); q < quirks.NumQuirks; q++ {
		if err := p.Quirks[q].Set(cfg.Quirks.Has(q)); err != nil {
			return err
		}
	}
	return p.MemorySize.Set(cfg.MemorySize)
}

// build the live configuration from the current values
func (p *Preferences) update() {
	var cfg hardware.Config
	for q := quirks.Quirk(0); q < quirks.NumQuirks; q++ {
		cfg.Quirks.Set(q, p.Quirks[q].Get().(bool))
	}
	cfg.CyclesPerFrame = p.CyclesPerFrame.Get().(int)
	cfg.MemorySize = p.MemorySize.Get().(int)
	cfg.SoundEnabled = p.Sound.Get().(bool)
	cfg.Seed = int64(p.Seed.Get().(int))
	p.live.Store(cfg)
	p.changed.Store(true)
}

// Config returns the machine configuration described by the preferences. It
// is safe to call from any goroutine.
func (p *Preferences) Config() hardware.Config {
	return p.live.Load().(hardware.Config)
}

// LivePalette returns the palette. It is safe to call from any goroutine.
func (p *Preferences) LivePalette() display.Palette {
	return p.livePalette.Load().(display.Palette)
}

// Changed returns true if any value has changed since the previous call to
// Changed().
func (p *Preferences) Changed() bool {
	return p.changed.Swap(false)
}

// Reset all preferences to the default values.
func (p *Preferences) Reset() error {
	return p.SetDefaults()
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return err
	}
	logger.Log(logger.Allow, "prefs", "saved hardware preferences")
	return nil
}
