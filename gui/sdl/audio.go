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

package sdl

import (
	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/limiter"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples in the SDL audio buffer. a short buffer reduces the
// lag between the audio and video
const bufferLength = 512

// the maximum amount of audio data allowed in the SDL queue, in bytes. if the
// queue is longer than this then the frame's samples are dropped. this stops
// the audio from lagging behind when the emulation runs faster than the
// frame rate
const maxQueueLength = bufferLength * 8

// Audio outputs the tone using SDL. It implements the tone.Generator,
// tone.PatternPlayer and tone.FrameSync interfaces.
type Audio struct {
	*audio.Synth

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	samples []int16
	data    []uint8

	samplesPerFrame int
}

// NewAudio is the preferred method of initialisation for the Audio type.
//
// SDL must be initialised with the audio subsystem before calling this
// function. NewSDL() does this.
func NewAudio() (*Audio, error) {
	aud := &Audio{
		Synth: audio.NewSynth(audio.SampleRate),
	}

	spec := &sdl.AudioSpec{
		Freq:     audio.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdl: audio: %v", err)
	}

	aud.samplesPerFrame = aud.SamplesPerFrame(limiter.DefaultRate)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// EndFrame implements the tone.FrameSync interface.
func (aud *Audio) EndFrame() error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueueLength {
		return nil
	}

	aud.samples = aud.Generate(aud.samples[:0], aud.samplesPerFrame)

	aud.data = aud.data[:0]
	for _, s := range aud.samples {
		aud.data = append(aud.data, uint8(s), uint8(s>>8))
	}

	if err := sdl.QueueAudio(aud.id, aud.data); err != nil {
		return curated.Errorf("sdl: audio: %v", err)
	}

	return nil
}

// Stop implements the tone.Generator interface. Any queued audio is
// discarded so that the tone stops immediately.
func (aud *Audio) Stop() {
	aud.Synth.Stop()
	sdl.ClearQueuedAudio(aud.id)
}

// End closes the audio device.
func (aud *Audio) End() {
	sdl.CloseAudioDevice(aud.id)
}
