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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdl"
	"github.com/jetsetilly/gopher8/gui/terminal"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/limiter"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/tone"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the playmode package provides its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	//
	// If the GUI framework does not require this sort of thread safety then
	// there is no need for the Service() function to do anything.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// the number of GUI events that can be queued before the GUI blocks
const eventQueueLen = 64

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// the creator returns a typed nil on error, which does not
				// compare equal to nil when stored in an interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// loadROM from the single argument remaining in the mode
func loadROM(md *modalflag.Modes, profile string) (romloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romloader.Loader{}, fmt.Errorf("ROM required for %s mode", md)
	case 1:
	default:
		return romloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	cl, err := romloader.NewLoader(md.GetArg(0), profile)
	if err != nil {
		return romloader.Loader{}, err
	}

	err = cl.Load()
	if err != nil {
		return romloader.Loader{}, err
	}

	logger.Logf(logger.Allow, "gopher8", "loaded %s (%d bytes) sha1 %s", cl.ShortName(), len(cl.Data), cl.Hash)

	return cl, nil
}

// newPreferences loads the preferences and applies the ROM profile and the
// cycles per frame value from the command line
func newPreferences(cl romloader.Loader, cpf int) (*preferences.Preferences, error) {
	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	if cl.Profile != "" {
		err = p.SetProfile(cl.Profile)
		if err != nil {
			return nil, err
		}
	}

	if cpf > 0 {
		err = p.CyclesPerFrame.Set(cpf)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	profile := md.AddString("profile", "AUTO", "quirks profile: CLASSIC, SUPERCHIP, XOCHIP")
	cpf := md.AddInt("cpf", 0, "instructions per frame (0 to use the preferences value)")
	scale := md.AddInt("scale", sdl.DefaultScale, "window scaling")
	useTerminal := md.AddBool("terminal", false, "draw display in the terminal instead of a window")
	uncapped := md.AddBool("uncapped", false, "run as quickly as possible")
	wav := md.AddString("wav", "", "record audio to wav file")
	trace := md.AddString("trace", "", "write disassembly of every executed instruction to file")
	memviz := md.AddString("memviz", "", "write register graph to file when a fault occurs")
	keymap := md.AddString("keymap", "", "keyboard mapping. eg. 1=1,q=4")
	prefsArg := md.AddString("prefs", "", "preference values to override for this session")
	stats := md.AddString("statsview", "", fmt.Sprintf("run stats server on address (eg. %s)", statsview.DefaultAddress))
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
		defer prefs.PopCommandLineStack()
	}

	cl, err := loadROM(md, *profile)
	if err != nil {
		return err
	}

	pref, err := newPreferences(cl, *cpf)
	if err != nil {
		return err
	}

	km := gui.DefaultKeymap
	if *keymap != "" {
		km, err = gui.ParseKeymap(*keymap)
		if err != nil {
			return err
		}
	}

	// create gui
	events := make(chan gui.Event, eventQueueLen)

	if *useTerminal {
		sync.creator <- func() (GuiCreator, error) {
			return terminal.NewTerminal(os.Stdin, os.Stdout, events)
		}
	} else {
		sync.creator <- func() (GuiCreator, error) {
			return sdl.NewSDL(*scale, events)
		}
	}

	// wait for creator result
	var scr gui.GUI
	select {
	case g := <-sync.creation:
		scr = g.(gui.GUI)
	case err := <-sync.creationError:
		return err
	}

	// audio output. the terminal has no audio device of its own
	var mx tone.Mixer

	if !*useTerminal {
		aud, err := sdl.NewAudio()
		if err != nil {
			logger.Log(logger.Allow, "gopher8", err)
		} else {
			defer aud.End()
			mx = append(mx, aud)
		}
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		defer func() {
			if err := aw.End(); err != nil {
				logger.Log(logger.Allow, "gopher8", err)
			}
		}()
		mx = append(mx, aw)
	}

	m, err := hardware.NewMachine(pref.Config(), scr, mx)
	if err != nil {
		return err
	}

	err = m.Load(cl.Data)
	if err != nil {
		return err
	}

	if *trace != "" {
		f, err := os.Create(*trace)
		if err != nil {
			return err
		}
		defer f.Close()

		m.SetTracer(func(r cpu.Result) {
			if r.Length > 0 {
				fmt.Fprintln(f, disassembly.At(m.Mem, r.Address).Line(true))
			}
		})
	}

	if *stats != "" {
		if err := statsview.Launch(md.Output, *stats); err != nil {
			fmt.Fprintf(md.Output, "! %v\n", err)
		}
	}

	// turn off fallback ctrl-c handling. playmode handles the interrupt
	// signal itself
	sync.state <- stateRequest{req: reqNoIntSig}

	lmtr := limiter.NewLimiter(limiter.DefaultRate)
	defer lmtr.Stop()
	lmtr.Active = !*uncapped

	return playmode.Play(m, scr, events, playmode.Options{
		Keymap:      km,
		Limiter:     lmtr,
		Prefs:       pref,
		FaultOutput: os.Stderr,
		Colour:      !*useTerminal,
		Memviz:      *memviz,
	})
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, err := loadROM(md, "")
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
	}

	dsm, err := disassembly.FromROM(cl.Data)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, attr)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	profile := md.AddString("profile", "AUTO", "quirks profile: CLASSIC, SUPERCHIP, XOCHIP")
	cpf := md.AddInt("cpf", 0, "instructions per frame (0 to use the preferences value)")
	uncapped := md.AddBool("uncapped", true, "run as quickly as possible")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	pprof := md.AddString("pprof", "NONE", "produce profiling reports: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*pprof)
	if err != nil {
		return err
	}

	cl, err := loadROM(md, *profile)
	if err != nil {
		return err
	}

	pref, err := newPreferences(cl, *cpf)
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(pref.Config(), nil, nil)
	if err != nil {
		return err
	}

	err = m.Load(cl.Data)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, m, *uncapped, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
