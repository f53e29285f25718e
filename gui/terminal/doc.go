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

// Package terminal is a frontend for the emulation that draws the framebuffer
// in a terminal. Each character cell shows two framebuffer pixels, one above
// the other, using the upper half block character with the foreground and
// background colours set from the palette.
//
// The terminal is put into cbreak mode so that key presses are received
// immediately. Terminals do not report key releases so a key release event is
// sent a short time after the most recent press of each key.
package terminal
