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

import (
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

// DefaultScale is the number of screen pixels for each low resolution
// framebuffer pixel.
const DefaultScale = 12

// SDL is a simple SDL implementation of the gui.GUI interface.
type SDL struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// connects the SDL event loop with the emulation
	events chan gui.Event

	// critical section protects the fields below. they are written by
	// Render() and SetFeature() and read by Service()
	crit sync.Mutex

	pixels  []uint8
	width   int
	height  int
	palette display.Palette
	state   govern.State
	scale   int

	// pixels have changed since the last Service()
	dirty bool

	// state or scale has changed since the last Service()
	featureChanged bool
}

// NewSDL is the preferred method of initialisation for the SDL type. Events
// are sent on the supplied channel.
//
// MUST ONLY be called from the #mainthread
func NewSDL(scale int, events chan gui.Event) (*SDL, error) {
	if scale <= 0 {
		scale = DefaultScale
	}

	scr := &SDL{
		events:         events,
		palette:        display.DefaultPalette,
		width:          display.LowResWidth,
		height:         display.LowResHeight,
		scale:          scale,
		state:          govern.Running,
		dirty:          true,
		featureChanged: true,
	}
	scr.pixels = make([]uint8, scr.width*scr.height)

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(display.HighResWidth*scale/2), int32(display.HighResHeight*scale/2),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	// mouse events are not used by the emulation
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	logger.Logf(logger.Allow, "sdl", "window created with scale %d", scale)

	return scr, nil
}

// Render implements the hardware.Renderer interface.
func (scr *SDL) Render(fb *display.Framebuffer) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	scr.width = fb.Width()
	scr.height = fb.Height()
	scr.pixels = fb.CompositeAll(scr.pixels)
	scr.dirty = true

	return nil
}

// SetFeature implements the gui.GUI interface.
func (scr *SDL) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	if len(args) != 1 {
		return curated.Errorf(gui.FeatureArgument, request)
	}

	switch request {
	case gui.ReqState:
		s, ok := args[0].(govern.State)
		if !ok {
			return curated.Errorf(gui.FeatureArgument, request)
		}
		scr.state = s
	case gui.ReqSetPalette:
		p, ok := args[0].(display.Palette)
		if !ok {
			return curated.Errorf(gui.FeatureArgument, request)
		}
		scr.palette = p
		scr.dirty = true
	case gui.ReqSetScale:
		s, ok := args[0].(int)
		if !ok || s <= 0 {
			return curated.Errorf(gui.FeatureArgument, request)
		}
		scr.scale = s
	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	scr.featureChanged = true

	return nil
}

// Service the SDL event queue and redraw the window if the framebuffer has
// changed.
//
// MUST ONLY be called from the #mainthread
func (scr *SDL) Service() {
	// loop until there are no more events to retrieve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.events <- gui.EventQuit{}

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break // switch
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				scr.events <- gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: true}
			case sdl.KEYUP:
				scr.events <- gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: false}
			}
		}
	}

	scr.crit.Lock()
	defer scr.crit.Unlock()

	if scr.featureChanged {
		scr.featureChanged = false
		scr.window.SetTitle(title(scr.state))
		scr.window.SetSize(int32(display.HighResWidth*scr.scale/2), int32(display.HighResHeight*scr.scale/2))
		scr.dirty = true
	}

	if !scr.dirty {
		return
	}
	scr.dirty = false

	if err := scr.draw(); err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
}

// draw the most recent framebuffer. must be called with the critical section
// locked
func (scr *SDL) draw() error {
	w, h := scr.window.GetSize()

	// the framebuffer is stretched to fill the window
	pw := w / int32(scr.width)
	ph := h / int32(scr.height)

	bg := scr.palette[0]
	if err := scr.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	// one pass for each colour. background pixels have been drawn by Clear()
	for c := 1; c < len(scr.palette); c++ {
		col := scr.palette[c]
		if err := scr.renderer.SetDrawColor(col.R, col.G, col.B, col.A); err != nil {
			return curated.Errorf("sdl: %v", err)
		}
		for _, r := range Rects(scr.pixels, scr.width, scr.height, uint8(c)) {
			rect := sdl.Rect{X: r.X * pw, Y: r.Y * ph, W: r.W * pw, H: ph}
			if err := scr.renderer.FillRect(&rect); err != nil {
				return curated.Errorf("sdl: %v", err)
			}
		}
	}

	scr.renderer.Present()

	return nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SDL) Destroy(output io.Writer) {
	if err := scr.renderer.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.window.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	sdl.Quit()
}

func title(state govern.State) string {
	switch state {
	case govern.Paused:
		return fmt.Sprintf("%s (paused)", version.ApplicationName)
	case govern.Halted:
		return fmt.Sprintf("%s (halted)", version.ApplicationName)
	}
	return version.ApplicationName
}
