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

package terminal_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/terminal"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestFrame(t *testing.T) {
	fb := display.NewFramebuffer()
	fb.SetPixel(0, 0, 0, true)
	fb.SetPixel(1, 10, 5, true)

	s := terminal.Frame(fb.CompositeAll(nil), fb.Width(), fb.Height(), display.DefaultPalette)
	test.ExpectEquality(t, strings.Count(s, "\n"), display.LowResHeight/2)
	test.ExpectEquality(t, strings.Count(s, "▀"), display.LowResWidth*display.LowResHeight/2)

	fb.SetResolution(true)
	s = terminal.Frame(fb.CompositeAll(nil), fb.Width(), fb.Height(), display.DefaultPalette)
	test.ExpectEquality(t, strings.Count(s, "\n"), display.HighResHeight/2)
	test.ExpectEquality(t, strings.Count(s, "▀"), display.HighResWidth*display.HighResHeight/2)
}

func TestKeyName(t *testing.T) {
	k, ok := terminal.KeyName([]uint8{'Q'})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, "q")

	k, ok = terminal.KeyName([]uint8{'4'})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, "4")

	k, ok = terminal.KeyName([]uint8{0x1b})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, gui.HotkeyQuit)

	k, ok = terminal.KeyName([]uint8{' '})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, gui.HotkeyPause)

	// cursor keys and control characters are ignored
	_, ok = terminal.KeyName([]uint8{0x1b, '[', 'A'})
	test.ExpectFailure(t, ok)
	_, ok = terminal.KeyName([]uint8{0x01})
	test.ExpectFailure(t, ok)
	_, ok = terminal.KeyName(nil)
	test.ExpectFailure(t, ok)
}
