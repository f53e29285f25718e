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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/limiter"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the time the emulation runs for before measurement begins. allows the frame
// rate to settle down
var leadTime = 2 * time.Second

// Check the performance of the emulator by running the machine for the
// specified duration. The machine should have a ROM loaded.
//
// If uncapped is true the emulation runs as quickly as possible. Profiling
// is performed as defined by the Profile argument.
func Check(output io.Writer, profile Profile, m *hardware.Machine, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	lmtr := limiter.NewLimiter(limiter.DefaultRate)
	defer lmtr.Stop()
	lmtr.Active = !uncapped

	startFrame := m.Frames

	// run for specified period of time
	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		return m.Run(lmtr, func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = m.Frames
			default:
			}
			return govern.Running, nil
		})
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	// calculate performance
	numFrames := m.Frames - startFrame
	fps, accuracy := CalcFPS(lmtr.Rate(), numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))
	output.Write([]byte(fmt.Sprintf("%d instructions per frame\n", m.Config().CyclesPerFrame)))

	return nil
}
