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
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/faults"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/logger"
)

// called by the machine's Run() function once per frame
func (pl *playmode) eventHandler() (govern.State, error) {
	if pl.opts.Prefs != nil && pl.opts.Prefs.Changed() {
		if err := pl.applyPrefs(); err != nil {
			return govern.Ending, err
		}
	}

	if pl.m.Halted() && !pl.haltHandled {
		if err := pl.handleHalt(); err != nil {
			return govern.Ending, err
		}
	}

	// one event per frame so that a key press and release that arrive
	// together are both seen by the program
	select {
	case <-pl.intChan:
		return govern.Ending, nil

	case ev := <-pl.events:
		if err := pl.userInputHandler(ev); err != nil {
			return govern.Ending, err
		}

	default:
	}

	return pl.state, nil
}

func (pl *playmode) handleHalt() error {
	pl.haltHandled = true

	if err := pl.setState(govern.Halted); err != nil {
		return err
	}

	flt := pl.m.Fault()
	if flt == nil {
		logger.Log(pl.m, "playmode", "program exited")
		return nil
	}

	logger.Log(pl.m, "playmode", flt)

	if pl.opts.FaultOutput != nil {
		if err := faults.Report(pl.opts.FaultOutput, flt, pl.m.Mem, pl.opts.Colour); err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	if pl.opts.Memviz != "" {
		f, err := os.Create(pl.opts.Memviz)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		faults.Graph(f, flt.Registers)
		if err := f.Close(); err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		logger.Logf(pl.m, "playmode", "register graph written to %s", pl.opts.Memviz)
	}

	return nil
}
