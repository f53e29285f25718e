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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/limiter"
)

// Run the emulation until the continueCheck() function returns the Ending
// state or an error. One frame is run for every call to the continueCheck()
// function.
//
// The limiter paces the emulation. A nil limiter means that the emulation runs
// as quickly as possible.
//
// In the Paused state no instructions are executed and the timers are not
// decremented but the limiter is still consulted so that the continueCheck()
// function is called at the frame rate. A tone that is sounding when the
// emulation is paused is stopped. It is not restarted when the emulation
// resumes.
//
// The Halted state is treated like the Running state. Cycle() does nothing
// once the machine has halted so only the limiter and the continueCheck()
// function are serviced.
func (m *Machine) Run(lmtr *limiter.Limiter, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running, govern.Halted:
			if err := m.Cycle(); err != nil {
				return err
			}
		case govern.Paused:
			m.silence()
		default:
			return curated.Errorf("machine: unsupported emulation state (%d) in Run() function", state)
		}

		if lmtr != nil {
			lmtr.CheckFrame()
			lmtr.MeasureActual()
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	m.silence()

	return nil
}

// RunForFrameCount runs the emulation for the specified number of frames as
// quickly as possible. Useful for tests and for measuring performance.
//
// The continueCheck() function is called after every frame with the number of
// frames completed so far. It can be nil.
func (m *Machine) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for frame := 0; frame < numFrames && state != govern.Ending; {
		if state != govern.Paused {
			if err := m.Cycle(); err != nil {
				return err
			}
			frame++
		} else {
			m.silence()
		}

		var err error
		state, err = continueCheck(frame)
		if err != nil {
			return err
		}
	}

	return nil
}
