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

// Package wavwriter allows writing of the tone output to disk as a WAV file.
// Note that audio data is buffered in memory in its entirity, and written to
// disk when End() is called. It is therefore probably only suitable for
// testing purposes or for short recordings.
package wavwriter

import (
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/limiter"
	"github.com/jetsetilly/gopher8/logger"
)

// WavWriter implements the tone.Generator, tone.PatternPlayer and
// tone.FrameSync interfaces.
type WavWriter struct {
	*audio.Synth

	filename string
	buffer   []int16

	// number of samples generated by each call to EndFrame()
	samplesPerFrame int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		Synth:    audio.NewSynth(audio.SampleRate),
		filename: filename,
		buffer:   make([]int16, 0),
	}
	aw.samplesPerFrame = aw.SamplesPerFrame(limiter.DefaultRate)

	return aw, nil
}

// EndFrame implements the tone.FrameSync interface.
func (aw *WavWriter) EndFrame() error {
	aw.buffer = aw.Generate(aw.buffer, aw.samplesPerFrame)
	return nil
}

// Len returns the number of samples recorded so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// End writes the recorded audio to disk.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.SampleRate(), 16, 1, 1)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  aw.SampleRate(),
		},
		Data:           make([]int, len(aw.buffer)),
		SourceBitDepth: 16,
	}
	for i, v := range aw.buffer {
		buf.Data[i] = int(v)
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
