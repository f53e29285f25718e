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

package playmode

import (
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/limiter"
	"github.com/jetsetilly/gopher8/hardware/preferences"
)

// Options for the Play() function. The zero value is usable.
type Options struct {
	// keymap used to convert key names to keypad keys. DefaultKeymap is used
	// if the field is nil
	Keymap gui.Keymap

	// limits the frame rate. if nil the emulation runs as quickly as possible
	Limiter *limiter.Limiter

	// preferences are checked for changes once per frame. can be nil
	Prefs *preferences.Preferences

	// fault reports are written here. no reports are written if nil
	FaultOutput io.Writer
	Colour      bool

	// if not empty, the register state at the time of a fault is written to
	// the named file as a graphviz document
	Memviz string
}

type playmode struct {
	m      *hardware.Machine
	scr    gui.GUI
	events chan gui.Event
	opts   Options

	intChan chan os.Signal

	state govern.State

	// the halt of the machine has been handled by handleHalt()
	haltHandled bool
}

// Play runs the machine until the user quits. The machine should have a ROM
// loaded. A machine that halts remains on screen until the user resets the
// machine or quits.
func Play(m *hardware.Machine, scr gui.GUI, events chan gui.Event, opts Options) error {
	if opts.Keymap == nil {
		opts.Keymap = gui.DefaultKeymap
	}

	pl := &playmode{
		m:       m,
		scr:     scr,
		events:  events,
		opts:    opts,
		intChan: make(chan os.Signal, 1),
	}

	// redirect interrupt signal so that the emulation can end cleanly
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	if opts.Prefs != nil {
		if err := pl.applyPrefs(); err != nil {
			return err
		}
	}

	if err := pl.setState(govern.Running); err != nil {
		return err
	}

	if err := m.Run(opts.Limiter, pl.eventHandler); err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

func (pl *playmode) setState(state govern.State) error {
	if pl.state == state {
		return nil
	}
	pl.state = state
	if err := pl.scr.SetFeature(gui.ReqState, state); err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	return nil
}

// apply the current preferences to the machine and the GUI
func (pl *playmode) applyPrefs() error {
	if err := pl.m.SetConfig(pl.opts.Prefs.Config()); err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	if err := pl.scr.SetFeature(gui.ReqSetPalette, pl.opts.Prefs.LivePalette()); err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	return nil
}
