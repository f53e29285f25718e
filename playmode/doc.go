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

// Package playmode runs a loaded machine in response to input from a GUI. It
// translates keyboard events into keypad presses and hotkey actions, applies
// preference changes between frames, and reports faults as they happen.
//
// The emulation is run on the goroutine that calls Play(). GUI events are
// received over a channel so the GUI can be serviced on another goroutine.
package playmode
