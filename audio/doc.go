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

// Package audio converts the state of the tone generator into PCM samples.
// The Synth type is shared by the frontends that produce sound and by the
// wavwriter package.
//
// The audio pattern is a sequence of 128 bits. Each bit is played for
// 1/rate seconds, a set bit producing a high sample and a clear bit a low
// sample. The pattern repeats for as long as the tone is active.
package audio
