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

// Package modalflag wraps the flag package in the Go standard library and
// adds the concept of program modes. Each mode has its own set of flags.
//
// Arguments are first given to the Modes type with NewArgs(). Flags and
// sub-modes are then added before calling Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	p, err := md.Parse()
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode in
// the list is the default and is selected if the first non-flag argument is
// not a sub-mode. Sub-mode comparisons are case insensitive.
//
// The flags for the selected mode are then added after a call to NewMode()
// and Parse() is called again. The arguments after the mode selector are
// parsed:
//
//	md.NewMode()
//	scale := md.AddInt("scale", 10, "size of each pixel")
//	p, err = md.Parse()
//
// Non-flag arguments are available with RemainingArgs() and GetArg().
//
// A -help flag is handled automatically. Parse() returns ParseHelp after the
// help has been written to the Output field of the Modes type.
package modalflag
