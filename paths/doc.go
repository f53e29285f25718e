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

// Package paths contains functions to prepare paths to gopher8 resources.
//
// The ResourcePath() function returns a path to a file in a resource
// sub-directory. The sub-directory is created if it does not exist:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// If a ".gopher8" directory exists in the current working directory then that
// is used as the base path. Otherwise, the "gopher8" directory in the user's
// config directory is used, as returned by os.UserConfigDir().
//
// On a modern Linux system the base path will usually be:
//
//	/home/user/.config/gopher8
package paths
