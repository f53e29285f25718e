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
	"image"
)

// Resolution sizes.
const (
	LowResWidth   = 64
	LowResHeight  = 32
	HighResWidth  = 128
	HighResHeight = 64
)

// NumPlanes is the number of bit-planes in the framebuffer.
const NumPlanes = 2

// Framebuffer is the two plane bitmap display.
type Framebuffer struct {
	highRes bool
	width   int
	height  int

	planes [NumPlanes][]bool

	// bit mask of the planes affected by Clear() and the scroll functions
	active uint8

	// set whenever a pixel changes. cleared by the consumer with ResetDirty()
	dirty bool
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type. The framebuffer starts in low resolution mode with the
// first plane active.
func NewFramebuffer() *Framebuffer {
	fb := &Framebuffer{active: 0x01}
	fb.SetResolution(false)
	return fb
}

func (fb *Framebuffer) String() string {
	return fmt.Sprintf("%dx%d planes=%02b", fb.width, fb.height, fb.active)
}

// Reset returns the framebuffer to its initial state.
func (fb *Framebuffer) Reset() {
	fb.active = 0x01
	fb.SetResolution(false)
}

// SetResolution reallocates both planes for the resolution. Both planes are
// cleared, even if the resolution has not changed.
func (fb *Framebuffer) SetResolution(highRes bool) {
	fb.highRes = highRes
	if highRes {
		fb.width, fb.height = HighResWidth, HighResHeight
	} else {
		fb.width, fb.height = LowResWidth, LowResHeight
	}
	for p := range fb.planes {
		fb.planes[p] = make([]bool, fb.width*fb.height)
	}
	fb.dirty = true
}

// HighRes returns true if the framebuffer is in high resolution mode.
func (fb *Framebuffer) HighRes() bool {
	return fb.highRes
}

// Width of the framebuffer in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height of the framebuffer in pixels.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// SetActivePlanes sets the planes affected by Clear() and the scroll
// functions. Only the low two bits of the mask are used.
func (fb *Framebuffer) SetActivePlanes(mask uint8) {
	fb.active = mask & 0x03
}

// ActivePlanes returns the current plane mask.
func (fb *Framebuffer) ActivePlanes() uint8 {
	return fb.active
}

func (fb *Framebuffer) isActive(plane int) bool {
	return fb.active&(1<<plane) != 0
}

// Dirty returns true if the framebuffer has changed since the last call to
// ResetDirty().
func (fb *Framebuffer) Dirty() bool {
	return fb.dirty
}

// ResetDirty clears the dirty flag.
func (fb *Framebuffer) ResetDirty() {
	fb.dirty = false
}

// Pixel returns the state of a single pixel in the plane. Coordinates outside
// the framebuffer return false.
func (fb *Framebuffer) Pixel(plane int, x int, y int) bool {
	if plane < 0 || plane >= NumPlanes || x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return false
	}
	return fb.planes[plane][y*fb.width+x]
}

// SetPixel toggles the pixel in the plane if value is true. Returns true if
// the pixel was switched off as a result. Coordinates outside the framebuffer
// are ignored.
//
// SetPixel is not affected by the active plane mask.
func (fb *Framebuffer) SetPixel(plane int, x int, y int, value bool) bool {
	if !value {
		return false
	}
	if plane < 0 || plane >= NumPlanes || x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return false
	}
	i := y*fb.width + x
	collision := fb.planes[plane][i]
	fb.planes[plane][i] = !collision
	fb.dirty = true
	return collision
}

// Clear all pixels in the active planes.
func (fb *Framebuffer) Clear() {
	for p := range fb.planes {
		if fb.isActive(p) {
			clear(fb.planes[p])
		}
	}
	fb.dirty = true
}

// ScrollUp moves the contents of the active planes up by n rows. Rows
// uncovered at the bottom are cleared.
func (fb *Framebuffer) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	fb.scroll(0, -n)
}

// ScrollDown moves the contents of the active planes down by n rows. Rows
// uncovered at the top are cleared.
func (fb *Framebuffer) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	fb.scroll(0, n)
}

// ScrollLeft moves the contents of the active planes left by n columns.
// Columns uncovered on the right are cleared.
func (fb *Framebuffer) ScrollLeft(n int) {
	if n <= 0 {
		return
	}
	fb.scroll(-n, 0)
}

// ScrollRight moves the contents of the active planes right by n columns.
// Columns uncovered on the left are cleared.
func (fb *Framebuffer) ScrollRight(n int) {
	if n <= 0 {
		return
	}
	fb.scroll(n, 0)
}

// scroll moves active planes by dx and dy
func (fb *Framebuffer) scroll(dx int, dy int) {
	if fb.active == 0 {
		return
	}

	for p := range fb.planes {
		if !fb.isActive(p) {
			continue
		}

		src := fb.planes[p]
		dst := make([]bool, len(src))
		for y := 0; y < fb.height; y++ {
			sy := y - dy
			if sy < 0 || sy >= fb.height {
				continue
			}
			for x := 0; x < fb.width; x++ {
				sx := x - dx
				if sx < 0 || sx >= fb.width {
					continue
				}
				dst[y*fb.width+x] = src[sy*fb.width+sx]
			}
		}
		fb.planes[p] = dst
	}

	fb.dirty = true
}

// Composite returns the palette index of the pixel. Plane 0 contributes bit 0
// and plane 1 contributes bit 1.
func (fb *Framebuffer) Composite(x int, y int) uint8 {
	var c uint8
	for p := range fb.planes {
		if fb.Pixel(p, x, y) {
			c |= 1 << p
		}
	}
	return c
}

// CompositeAll writes the palette index of every pixel to dst, in row order.
// The dst slice is grown as required and is returned.
func (fb *Framebuffer) CompositeAll(dst []uint8) []uint8 {
	n := fb.width * fb.height
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	for i := range dst {
		var c uint8
		if fb.planes[0][i] {
			c |= 0x01
		}
		if fb.planes[1][i] {
			c |= 0x02
		}
		dst[i] = c
	}
	return dst
}

// Image renders the framebuffer through the palette.
func (fb *Framebuffer) Image(pal Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, pal[fb.Composite(x, y)])
		}
	}
	return img
}
