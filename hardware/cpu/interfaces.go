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

package cpu

import (
	"github.com/jetsetilly/gopher8/hardware/display"
)

// Display defines the operations of the framebuffer required by the CPU.
// The display.Framebuffer type satisfies the interface.
type Display interface {
	SetResolution(highRes bool)
	HighRes() bool
	Width() int
	Height() int
	SetActivePlanes(mask uint8)
	SetPixel(plane int, x int, y int, value bool) bool
	Clear()
	ScrollUp(n int)
	ScrollDown(n int)
	ScrollLeft(n int)
	ScrollRight(n int)
}

// KeySource reports the state of the keypad.
type KeySource interface {
	IsPressed(key uint8) bool
}

var _ Display = (*display.Framebuffer)(nil)
