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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// pattern and values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Sentinel patterns are
// stored as exported string constants in the package that produces them. For
// example, the hardware package has:
//
//	const NoROM = "machine: no ROM to load"
//
// which can be checked for with:
//
//	if curated.Is(err, hardware.NoROM) {
//		...
//	}
//
// The Has() function is similar but checks the entire error chain:
//
//	err := curated.Errorf("gopher8: %v", curated.Errorf(hardware.NoROM))
//	curated.Has(err, hardware.NoROM) // true
//	curated.Is(err, hardware.NoROM)  // false
//
// The message returned by Error() is normalised. The chain is split into
// parts separated by ": " and adjacent duplicate parts are removed. This means
// that a function can wrap the error of a function in the same package
// without worrying about stuttering messages like "memory: memory: ...".
package curated
