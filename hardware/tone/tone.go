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

// Package tone defines the interface between the virtual machine and the
// device producing its sound. The machine has a single tone that sounds
// while the sound timer is non-zero.
//
// The sound is described by a 128 bit pattern (sixteen bytes, most
// significant bit first) that is played at a rate determined by the pitch
// register. A machine that never changes the pattern or pitch plays the
// DefaultPattern at the DefaultPitch, a square wave.
package tone

import (
	"math"
)

// PatternSize is the number of bytes in a pattern.
const PatternSize = 16

// Pattern is the 128 bit sample buffer. Each bit is one sample.
type Pattern [PatternSize]uint8

// DefaultPattern is a square wave.
var DefaultPattern = Pattern{
	0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0,
	0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0,
}

// DefaultPitch is the value of the pitch register after a reset.
const DefaultPitch = 64

// Rate returns the playback rate of the pattern, in bits per second, for the
// pitch value.
func Rate(pitch uint8) float32 {
	return float32(4000 * math.Pow(2, (float64(pitch)-64)/48))
}

// Generator is implemented by any device that can sound a tone. Start() is
// called when the sound timer becomes non-zero and Stop() when it returns to
// zero. The rate is the playback rate of the current pattern, as returned by
// Rate().
type Generator interface {
	Start(rate float32)
	Stop()
}

// PatternPlayer is implemented by generators that can play the pattern
// loaded by the program. SetPattern() is called whenever the pattern or pitch
// changes and once when the generator is attached to the machine.
type PatternPlayer interface {
	SetPattern(pattern Pattern, rate float32)
}

// FrameSync is implemented by generators that need to know when a frame of
// emulation has completed. For example, a generator that records the tone
// to a file will produce one frame's worth of samples on every call to
// EndFrame().
type FrameSync interface {
	EndFrame() error
}
