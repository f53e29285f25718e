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

package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// styles for every combination of top and bottom pixel colour
type styles [1 << display.NumPlanes][1 << display.NumPlanes]lipgloss.Style

func newStyles(pal display.Palette) styles {
	var s styles
	for top, fg := range pal {
		for bottom, bg := range pal {
			s[top][bottom] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(fg.R, fg.G, fg.B))).
				Background(lipgloss.Color(hex(bg.R, bg.G, bg.B)))
		}
	}
	return s
}

func hex(r, g, b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{'#',
		digits[r>>4], digits[r&0x0f],
		digits[g>>4], digits[g&0x0f],
		digits[b>>4], digits[b&0x0f],
	})
}

// Frame converts the composite pixels of a framebuffer to text. Each line of
// text shows two rows of pixels. Runs of cells with the same colours are
// rendered with a single style.
func Frame(pixels []uint8, width int, height int, pal display.Palette) string {
	s := newStyles(pal)

	var b strings.Builder

	for y := 0; y+1 < height; y += 2 {
		top := pixels[y*width : (y+1)*width]
		bottom := pixels[(y+1)*width : (y+2)*width]

		start := 0
		for x := 1; x <= width; x++ {
			if x < width && top[x] == top[start] && bottom[x] == bottom[start] {
				continue
			}
			st := s[top[start]&0x03][bottom[start]&0x03]
			b.WriteString(st.Render(strings.Repeat(halfBlock, x-start)))
			start = x
		}
		b.WriteString(clearLine)
		b.WriteString("\n")
	}

	return b.String()
}
