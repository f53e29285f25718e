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

// Package preferences contains the emulator settings that persist between
// sessions. The settings are stored in the global preferences file in the
// resource directory.
//
// Values can be read safely from any goroutine with the Config() and
// Palette() functions. The Changed() function indicates that a value has been
// updated since the last call to Changed(). The Timing Driver polls this
// function and applies the new configuration between cycles.
package preferences
