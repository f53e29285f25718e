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

package cpu

import (
	"github.com/jetsetilly/gopher8/hardware/quirks"
)

// DXYN. draw a sprite from memory at I to the selected planes. each plane
// takes its own sprite data, one after the other
func (mc *CPU) draw(x uint8, y uint8, n uint8) {
	mc.LastResult.Drew = true

	w := mc.disp.Width()
	h := mc.disp.Height()

	// only the starting position wraps
	sx := int(mc.V[x]) % w
	sy := int(mc.V[y]) % h

	rows := int(n)
	cols := 8
	bytesPerRow := 1
	if n == 0 {
		if !mc.disp.HighRes() && mc.Quirks.Has(quirks.ZeroHeightSpriteFallback) {
			rows = 8
		} else {
			rows = 16
			cols = 16
			bytesPerRow = 2
		}
	}

	clip := mc.Quirks.Has(quirks.Clip)
	collision := false
	addr := mc.I

	for plane := 0; plane < 2; plane++ {
		if mc.Plane&(1<<plane) == 0 {
			continue
		}

		for r := 0; r < rows; r++ {
			py := sy + r
			if py >= h {
				if clip {
					continue
				}
				py %= h
			}

			for c := 0; c < cols; c++ {
				b := mc.mem.Read(addr + uint16(r*bytesPerRow+c/8))
				if b&(0x80>>(c%8)) == 0 {
					continue
				}

				px := sx + c
				if px >= w {
					if clip {
						continue
					}
					px %= w
				}

				if mc.disp.SetPixel(plane, px, py, true) {
					collision = true
				}
			}
		}

		addr += uint16(rows * bytesPerRow)
	}

	mc.V[VF] = flag(collision)
}
