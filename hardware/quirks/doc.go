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

// Package quirks defines the behavioural differences between the CHIP-8
// family of interpreters. Each quirk is a single boolean toggle and the
// Quirks type is a table of them indexed by the Quirk enum.
//
// The three presets, Classic, SuperChip and XOChip, reproduce the behaviour
// of the best known interpreter for each dialect.
package quirks
