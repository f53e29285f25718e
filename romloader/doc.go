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

// Package romloader is used to specify and load the ROM to use with the
// emulation. ROMs can be loaded from local files or from HTTP URLs.
//
// The SHA-1 hash of the ROM is calculated on loading. If the Hash field has
// been set before loading then the loaded data must match it.
//
// The profile of the ROM is taken from the file extension unless it is
// specified explicitly. See the NewLoader() function.
package romloader
