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

package gui

import (
	"github.com/jetsetilly/gopher8/hardware/display"
)

// GUI defines the operations that can be performed on the frontends.
type GUI interface {
	// Render implements the hardware.Renderer interface. It is called by the
	// emulation goroutine.
	Render(fb *display.Framebuffer) error

	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. argument must be of the type specified or
// else the type conversion will fail.
const (
	// notify GUI of emulation state. the GUI should use this to indicate that
	// the emulation is paused or halted
	ReqState FeatureReq = "ReqState" // govern.State

	// the palette used to render the framebuffer
	ReqSetPalette FeatureReq = "ReqSetPalette" // display.Palette

	// the size of a framebuffer pixel in screen pixels (or characters)
	ReqSetScale FeatureReq = "ReqSetScale" // int
)

// Sentinel error patterns.
const (
	UnsupportedGuiFeature = "gui: unsupported feature: %v"
	FeatureArgument       = "gui: bad argument for %v"
)
