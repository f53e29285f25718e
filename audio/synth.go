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

package audio

import (
	"sync"

	"github.com/jetsetilly/gopher8/hardware/tone"
)

// SampleRate is the default number of samples per second.
const SampleRate = 44100

// DefaultVolume is the amplitude of the square wave produced by the Synth.
const DefaultVolume = 4096

// the number of bits in a pattern
const patternBits = tone.PatternSize * 8

// Synth generates signed 16bit mono samples for the current audio pattern. It
// implements the tone.Generator and tone.PatternPlayer interfaces.
//
// Generate() can be called from a different goroutine to the other functions.
type Synth struct {
	crit sync.Mutex

	sampleRate int

	pattern tone.Pattern
	rate    float32
	active  bool

	// position in the pattern measured in bits
	phase float64

	// amplitude of the samples. changes take effect on the next call to
	// Generate()
	Volume int16
}

// NewSynth is the preferred method of initialisation for the Synth type.
func NewSynth(sampleRate int) *Synth {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	return &Synth{
		sampleRate: sampleRate,
		pattern:    tone.DefaultPattern,
		rate:       tone.Rate(tone.DefaultPitch),
		Volume:     DefaultVolume,
	}
}

// SampleRate returns the number of samples per second.
func (syn *Synth) SampleRate() int {
	return syn.sampleRate
}

// Start implements the tone.Generator interface.
func (syn *Synth) Start(rate float32) {
	syn.crit.Lock()
	defer syn.crit.Unlock()
	syn.rate = rate
	if !syn.active {
		syn.phase = 0
	}
	syn.active = true
}

// Stop implements the tone.Generator interface.
func (syn *Synth) Stop() {
	syn.crit.Lock()
	defer syn.crit.Unlock()
	syn.active = false
}

// Active returns true if the tone is sounding.
func (syn *Synth) Active() bool {
	syn.crit.Lock()
	defer syn.crit.Unlock()
	return syn.active
}

// SetPattern implements the tone.PatternPlayer interface.
func (syn *Synth) SetPattern(pattern tone.Pattern, rate float32) {
	syn.crit.Lock()
	defer syn.crit.Unlock()
	syn.pattern = pattern
	syn.rate = rate
}

// SamplesPerFrame returns the number of samples required for one frame at
// the specified frame rate.
func (syn *Synth) SamplesPerFrame(fps float32) int {
	if fps <= 0 {
		return 0
	}
	return int(float32(syn.sampleRate) / fps)
}

// Generate appends n samples to dst and returns the extended slice. Silence
// is generated if the tone is not active.
func (syn *Synth) Generate(dst []int16, n int) []int16 {
	syn.crit.Lock()
	defer syn.crit.Unlock()

	if !syn.active {
		for i := 0; i < n; i++ {
			dst = append(dst, 0)
		}
		return dst
	}

	step := float64(syn.rate) / float64(syn.sampleRate)
	for i := 0; i < n; i++ {
		bit := int(syn.phase) % patternBits
		if syn.pattern[bit>>3]&(0x80>>(bit&7)) != 0 {
			dst = append(dst, syn.Volume)
		} else {
			dst = append(dst, -syn.Volume)
		}

		syn.phase += step
		if syn.phase >= patternBits {
			syn.phase -= patternBits
		}
	}

	return dst
}
