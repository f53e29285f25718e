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
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
)

func (pl *playmode) userInputHandler(ev gui.Event) error {
	switch ev := ev.(type) {
	case gui.EventQuit:
		pl.state = govern.Ending

	case gui.EventKeyboard:
		if ev.Down {
			switch strings.ToLower(ev.Key) {
			case gui.HotkeyQuit:
				pl.state = govern.Ending
				return nil

			case gui.HotkeyPause:
				switch pl.state {
				case govern.Running:
					return pl.setState(govern.Paused)
				case govern.Paused:
					return pl.setState(govern.Running)
				}
				return nil

			case gui.HotkeyReset:
				return pl.reset()
			}
		}

		if k, ok := pl.opts.Keymap.Lookup(ev.Key); ok {
			pl.m.NotifyKey(k, ev.Down)
		}
	}

	return nil
}

func (pl *playmode) reset() error {
	err := pl.m.Reset()
	if err != nil && !curated.Is(err, hardware.NoROM) {
		return curated.Errorf("playmode: %v", err)
	}
	pl.haltHandled = false
	return pl.setState(govern.Running)
}
