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

package sdl

// Run is a horizontal run of pixels of the same colour. Measured in
// framebuffer pixels.
type Run struct {
	X, Y, W int32
}

// Rects returns the runs of pixels in the composite image that have the
// colour index c. Drawing runs rather than individual pixels reduces the
// number of calls to the renderer.
func Rects(pixels []uint8, width int, height int, c uint8) []Run {
	var runs []Run
	for y := 0; y < height; y++ {
		row := pixels[y*width : (y+1)*width]
		start := -1
		for x := 0; x <= width; x++ {
			if x < width && row[x] == c {
				if start == -1 {
					start = x
				}
				continue
			}
			if start != -1 {
				runs = append(runs, Run{X: int32(start), Y: int32(y), W: int32(x - start)})
				start = -1
			}
		}
	}
	return runs
}
