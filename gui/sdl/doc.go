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

// Package sdl is a frontend for the emulation using the SDL library. It opens
// a window, renders the framebuffer and forwards keyboard events to the
// emulation. The package also provides an SDL audio device for the tone
// generator.
//
// SDL requires that window events are handled on the main thread. The
// NewSDL(), Service() and Destroy() functions must only be called from the
// main thread. The Render() and SetFeature() functions can be called from any
// goroutine.
package sdl
