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

package gui

import (
	"fmt"
	"sort"
	"strings"
)

// Keymap maps the name of a host key to a key on the keypad. Names are
// compared without regard to case.
type Keymap map[string]uint8

// DefaultKeymap is used if no other keymap has been specified.
var DefaultKeymap = Keymap{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"q": 0x4, "w": 0x5, "e": 0x6, "r": 0xd,
	"a": 0x7, "s": 0x8, "d": 0x9, "f": 0xe,
	"z": 0xa, "x": 0x0, "c": 0xb, "v": 0xf,
}

// Lookup returns the keypad key for the named host key.
func (km Keymap) Lookup(name string) (uint8, bool) {
	k, ok := km[strings.ToLower(name)]
	return k, ok
}

func (km Keymap) String() string {
	s := make([]string, 0, len(km))
	for n, k := range km {
		s = append(s, fmt.Sprintf("%s=%x", n, k))
	}
	sort.Strings(s)
	return strings.Join(s, ",")
}

// ParseKeymap converts a comma separated list of name=key pairs to a Keymap.
// The key is a single hexadecimal digit.
func ParseKeymap(s string) (Keymap, error) {
	km := make(Keymap)
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		nk := strings.SplitN(p, "=", 2)
		if len(nk) != 2 || len(nk[0]) == 0 {
			return nil, fmt.Errorf("keymap: malformed entry (%s)", p)
		}
		var k uint8
		if n, err := fmt.Sscanf(nk[1], "%x", &k); err != nil || n != 1 || k > 0xf {
			return nil, fmt.Errorf("keymap: invalid key (%s)", nk[1])
		}
		km[strings.ToLower(strings.TrimSpace(nk[0]))] = k
	}
	return km, nil
}

// Hotkeys are host keys that control the emulation rather than the keypad.
const (
	HotkeyQuit  = "escape"
	HotkeyPause = "space"
	HotkeyReset = "f5"
)
