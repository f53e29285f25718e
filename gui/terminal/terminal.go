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
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/version"
)

// ReleaseDelay is the time after the most recent press of a key that the key
// release event is sent.
const ReleaseDelay = 150 * time.Millisecond

// the character used for each pair of pixels
const halfBlock = "▀"

// ANSI sequences
const (
	cursorHome = "\033[H"
	clearLine  = "\033[K"
	clearAll   = "\033[2J"
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// Terminal implements the gui.GUI interface.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	events chan gui.Event

	crit    sync.Mutex
	palette display.Palette
	state   govern.State
	pixels  []uint8

	// release timers for each key that is currently down
	keysCrit sync.Mutex
	releases map[string]*time.Timer
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. Key events are sent on the supplied channel.
func NewTerminal(input *os.File, output *os.File, events chan gui.Event) (*Terminal, error) {
	if input == nil {
		return nil, fmt.Errorf("terminal: requires an input file")
	}
	if output == nil {
		return nil, fmt.Errorf("terminal: requires an output file")
	}

	trm := &Terminal{
		input:    input,
		output:   output,
		events:   events,
		palette:  display.DefaultPalette,
		state:    govern.Running,
		releases: make(map[string]*time.Timer),
	}

	err := termios.Tcgetattr(trm.input.Fd(), &trm.canAttr)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}
	trm.cbreakAttr = trm.canAttr
	termios.Cfmakecbreak(&trm.cbreakAttr)

	err = termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.cbreakAttr)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	trm.output.WriteString(clearAll + hideCursor)

	go trm.readKeys()

	return trm, nil
}

// read key presses from the input file and convert them to events. the
// goroutine ends when the input file is closed
func (trm *Terminal) readKeys() {
	var b [16]byte
	for {
		n, err := trm.input.Read(b[:])
		if err != nil {
			if err != io.EOF {
				logger.Log(logger.Allow, "terminal", err)
			}
			return
		}
		if key, ok := KeyName(b[:n]); ok {
			trm.press(key)
		}
	}
}

// send a key down event and schedule the key up event
func (trm *Terminal) press(key string) {
	trm.keysCrit.Lock()
	if t, ok := trm.releases[key]; ok {
		t.Reset(ReleaseDelay)
		trm.keysCrit.Unlock()
		return
	}
	trm.releases[key] = time.AfterFunc(ReleaseDelay, func() {
		trm.keysCrit.Lock()
		delete(trm.releases, key)
		trm.keysCrit.Unlock()
		trm.events <- gui.EventKeyboard{Key: key, Down: false}
	})
	trm.keysCrit.Unlock()

	trm.events <- gui.EventKeyboard{Key: key, Down: true}
}

// KeyName converts the bytes read from the terminal to the name of a key. Key
// names are the same as those used by the other frontends where possible.
// Escape sequences, such as those produced by the cursor keys, are ignored.
func KeyName(b []uint8) (string, bool) {
	if len(b) == 0 {
		return "", false
	}

	switch b[0] {
	case 0x1b:
		if len(b) == 1 {
			return gui.HotkeyQuit, true
		}
		return "", false
	case ' ':
		return gui.HotkeyPause, true
	}

	if len(b) != 1 || b[0] < '!' || b[0] > '~' {
		return "", false
	}

	return strings.ToLower(string(b[0])), true
}

// Render implements the hardware.Renderer interface.
func (trm *Terminal) Render(fb *display.Framebuffer) error {
	trm.crit.Lock()
	trm.pixels = fb.CompositeAll(trm.pixels)
	s := Frame(trm.pixels, fb.Width(), fb.Height(), trm.palette)
	state := trm.state
	trm.crit.Unlock()

	var b strings.Builder
	b.WriteString(cursorHome)
	b.WriteString(s)
	b.WriteString(status(state))
	b.WriteString(clearLine)

	_, err := trm.output.WriteString(b.String())
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}

	return nil
}

func status(state govern.State) string {
	switch state {
	case govern.Paused:
		return fmt.Sprintf("%s (paused)", version.ApplicationName)
	case govern.Halted:
		return fmt.Sprintf("%s (halted)", version.ApplicationName)
	}
	return version.ApplicationName
}

// SetFeature implements the gui.GUI interface.
func (trm *Terminal) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	if len(args) != 1 {
		return curated.Errorf(gui.FeatureArgument, request)
	}

	switch request {
	case gui.ReqState:
		s, ok := args[0].(govern.State)
		if !ok {
			return curated.Errorf(gui.FeatureArgument, request)
		}
		trm.state = s
	case gui.ReqSetPalette:
		p, ok := args[0].(display.Palette)
		if !ok {
			return curated.Errorf(gui.FeatureArgument, request)
		}
		trm.palette = p
	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// Service implements the GuiCreator interface. The terminal does not need to
// do anything on the main thread.
func (trm *Terminal) Service() {
}

// Destroy implements the GuiCreator interface. The terminal is returned to
// canonical mode.
func (trm *Terminal) Destroy(output io.Writer) {
	trm.keysCrit.Lock()
	for _, t := range trm.releases {
		t.Stop()
	}
	trm.keysCrit.Unlock()

	trm.output.WriteString(showCursor + "\n")

	err := termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.canAttr)
	if err != nil {
		fmt.Fprintln(output, err)
	}
}
