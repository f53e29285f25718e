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

// Package keypad implements the sixteen key hexadecimal keypad of the virtual
// machine. The layout of the original keypad is:
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
package keypad

import (
	"fmt"
	"strings"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad records which keys are currently held down.
type Keypad struct {
	pressed [NumKeys]bool
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for k := range kp.pressed {
		if kp.pressed[k] {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// Reset releases all keys.
func (kp *Keypad) Reset() {
	kp.pressed = [NumKeys]bool{}
}

// Set the state of a key. Returns false if key is not a valid key number.
func (kp *Keypad) Set(key uint8, pressed bool) bool {
	if int(key) >= NumKeys {
		return false
	}
	kp.pressed[key] = pressed
	return true
}

// IsPressed returns true if the key is held down. Only the low nibble of the
// key value is considered.
func (kp *Keypad) IsPressed(key uint8) bool {
	return kp.pressed[key&0x0f]
}
