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

package logger

import "sync/atomic"

// Permission is consulted by Log() and Logf() before an entry is added. The
// machine and its components pass themselves, or a Switch they own, so that
// logging can be silenced for headless runs and tests.
type Permission interface {
	AllowLogging() bool
}

type fixed bool

func (f fixed) AllowLogging() bool {
	return bool(f)
}

// Allow and Deny are fixed permissions. Allow is the usual value for code
// that has no machine context of its own.
var (
	Allow Permission = fixed(true)
	Deny  Permission = fixed(false)
)

// Switch is a Permission that can be changed at any time and from any
// goroutine. The zero value denies logging.
type Switch struct {
	on atomic.Bool
}

// NewSwitch returns a Switch in the requested state.
func NewSwitch(on bool) *Switch {
	s := &Switch{}
	s.on.Store(on)
	return s
}

// Set turns logging on or off.
func (s *Switch) Set(on bool) {
	s.on.Store(on)
}

// AllowLogging implements the Permission interface.
func (s *Switch) AllowLogging() bool {
	return s.on.Load()
}
