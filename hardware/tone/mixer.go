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

package tone

// Mixer forwards tone events to more than one Generator. The PatternPlayer
// and FrameSync interfaces are forwarded to the generators that implement
// them.
type Mixer []Generator

// Start implements the Generator interface.
func (mx Mixer) Start(rate float32) {
	for _, g := range mx {
		g.Start(rate)
	}
}

// Stop implements the Generator interface.
func (mx Mixer) Stop() {
	for _, g := range mx {
		g.Stop()
	}
}

// SetPattern implements the PatternPlayer interface.
func (mx Mixer) SetPattern(pattern Pattern, rate float32) {
	for _, g := range mx {
		if pp, ok := g.(PatternPlayer); ok {
			pp.SetPattern(pattern, rate)
		}
	}
}

// EndFrame implements the FrameSync interface. The first error encountered
// is returned after every generator has been synchronised.
func (mx Mixer) EndFrame() error {
	var err error
	for _, g := range mx {
		if fs, ok := g.(FrameSync); ok {
			if e := fs.EndFrame(); e != nil && err == nil {
				err = e
			}
		}
	}
	return err
}
