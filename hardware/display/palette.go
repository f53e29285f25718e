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

package display

import (
	"fmt"
	"image/color"
	"strings"
)

// Palette maps the composite value of a pixel to a colour. Index 0 is the
// background, index 1 is plane 0 only, index 2 is plane 1 only and index 3 is
// where both planes are set.
type Palette [1 << NumPlanes]color.RGBA

// DefaultPalette is used when no other palette has been specified.
var DefaultPalette = Palette{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff},
	{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
}

// String returns the palette as a comma separated list of HTML style colour
// values. The string can be converted back to a Palette with ParsePalette().
func (pal Palette) String() string {
	s := make([]string, len(pal))
	for i, c := range pal {
		s[i] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return strings.Join(s, ",")
}

// ParsePalette converts a comma separated list of four HTML style colour
// values to a Palette. The leading hash of each value is optional.
func ParsePalette(s string) (Palette, error) {
	var pal Palette

	parts := strings.Split(s, ",")
	if len(parts) != len(pal) {
		return pal, fmt.Errorf("palette: expected %d colours, got %d", len(pal), len(parts))
	}

	for i, p := range parts {
		p = strings.TrimPrefix(strings.TrimSpace(p), "#")
		var r, g, b uint8
		if n, err := fmt.Sscanf(p, "%02x%02x%02x", &r, &g, &b); err != nil || n != 3 || len(p) != 6 {
			return pal, fmt.Errorf("palette: invalid colour (%s)", parts[i])
		}
		pal[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}

	return pal, nil
}
