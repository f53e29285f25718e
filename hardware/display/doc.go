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

// Package display implements the framebuffer of the virtual machine. The
// framebuffer has two bit-planes of identical size. The size depends on the
// resolution mode: 64x32 in low resolution and 128x64 in high resolution.
//
// The framebuffer knows nothing about instructions. The interpreter draws to
// it with SetPixel() and manipulates the active planes with Clear() and the
// scrolling functions. The value of a pixel on screen is the composite of the
// two planes, a value between 0 and 3, which is used as an index into a
// Palette.
package display
