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

// Package limiter paces the emulation so that it runs at the correct number
// of frames per second. The interpreter core only counts instructions and it
// is the job of the timing driver to call the core at the correct rate.
//
// The CheckFrame() function should be called once per frame. It will block
// for as long as is required to maintain the frame rate. The actual frame rate
// achieved can be measured with MeasureActual() and read from the Measured
// field.
package limiter

import (
	"sync/atomic"
	"time"
)

// DefaultRate is the rate of the timers in the virtual machine.
const DefaultRate float32 = 60.0

// Limiter implements frame rate limiting.
type Limiter struct {
	// whether to wait in CheckFrame(). if Active is false the emulation will
	// run as fast as possible
	Active bool

	// the requested frame rate
	rate atomic.Value // float32

	// the pulse is not waited on every frame. instead the pulse duration is
	// a multiple of the frame duration and waited on every pulseCtLimit
	// frames. this evens out the inaccuracy of very short tickers
	pulse        *time.Ticker
	pulseCt      int
	pulseCtLimit int

	// measurement of the actual frame rate is performed once a second
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	// Measured is the number of frames per second achieved over the most
	// recent measuring period
	Measured atomic.Value // float32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(fps float32) *Limiter {
	lmtr := &Limiter{
		Active:         true,
		pulse:          time.NewTicker(time.Second),
		measuringPulse: time.NewTicker(time.Second),
	}
	lmtr.Measured.Store(float32(0))
	lmtr.SetLimit(fps)
	return lmtr
}

// Rate returns the requested frame rate.
func (lmtr *Limiter) Rate() float32 {
	return lmtr.rate.Load().(float32)
}

// SetLimit changes the frame rate. A value of zero or less selects the
// DefaultRate.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0 {
		fps = DefaultRate
	}
	lmtr.rate.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called once every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if !lmtr.Active {
		return
	}

	lmtr.pulseCt++
	if lmtr.pulseCt >= lmtr.pulseCtLimit {
		lmtr.pulseCt = 0
		<-lmtr.pulse.C
	}
}

// MeasureActual updates the Measured field once a second. It is cheap to call
// every frame.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.Measured.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter's tickers. The limiter should not be used afterwards.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
