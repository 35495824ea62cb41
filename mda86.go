// This file is part of 86Box.
//
// 86Box is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// 86Box is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with 86Box.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/NishiOwO/86Box/digest"
	"github.com/NishiOwO/86Box/gui"
	"github.com/NishiOwO/86Box/gui/ebitenwindow"
	"github.com/NishiOwO/86Box/gui/sdlwindow"
	"github.com/NishiOwO/86Box/hardware/display"
	"github.com/NishiOwO/86Box/hardware/display/limiter"
	"github.com/NishiOwO/86Box/hardware/machine"
	"github.com/NishiOwO/86Box/hardware/preferences"
	"github.com/NishiOwO/86Box/logger"
	"github.com/NishiOwO/86Box/modalflag"
	"github.com/NishiOwO/86Box/monitor"
	"github.com/NishiOwO/86Box/prefs"
	"github.com/NishiOwO/86Box/screenshot"
	"github.com/NishiOwO/86Box/script"
	"github.com/NishiOwO/86Box/statsview"
)

const windowTitle = "mda86"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window creation and event handling to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (gui.GUI, error)

	// the result of creator will be returned on either of these two channels
	creation      chan gui.GUI
	creationError chan error

	// closed by launch() when the GUI should stop running
	guiDone chan struct{}

	// interrupt signals are received by main() while waiting for requests
	// and by the running emulation otherwise
	interrupt chan os.Signal
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
		guiDone:       make(chan struct{}),
		interrupt:     make(chan os.Signal, 1),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	signal.Notify(sync.interrupt, os.Interrupt)

	go launch(sync)

	done := false
	for !done {
		select {
		case <-sync.interrupt:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			g, err := creator()
			if err != nil {
				sync.creationError <- err
				continue
			}
			sync.creation <- g

			// the GUI runs on the main thread until launch() closes guiDone
			// or the window is closed
			if err := g.Run(sync.guiDone); err != nil {
				fmt.Printf("* %v\n", err)
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "MONITOR", "SCRIPT")

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

	case "HEADLESS":
		err = headless(md, sync)

	case "MONITOR":
		err = monitorMode(md)

	case "SCRIPT":
		err = scriptMode(md, sync)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to all modes. the returned function creates the machine once
// the flags have been parsed
func commonFlags(md *modalflag.Modes) func() (*machine.Machine, error) {
	prefsArg := md.AddString("prefs", "", "preferences for this session: \"key::value; key::value\"")
	log := md.AddBool("log", false, "echo log to stderr")

	return func() (*machine.Machine, error) {
		if *log {
			logger.SetEcho(logger.NewColorizer(os.Stderr), true)
		}

		prefs.PushCommandLineStack(*prefsArg)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "mda86", "unused preferences: %s", unused)
			}
		}()

		p, err := preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
		return machine.NewMachine(p)
	}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	create := commonFlags(md)
	backend := md.AddString("gui", "sdl", "window backend: SDL, EBITEN")
	scheme := md.AddString("scheme", "", fmt.Sprintf("display scheme: %s", strings.Join(display.Schemes, ", ")))
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	md.AdditionalHelp("The optional argument is a text file to show on the page.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mch, err := create()
	if err != nil {
		return err
	}
	defer mch.End()

	if *scheme != "" {
		if err := mch.Prefs.Scheme.Set(*scheme); err != nil {
			return err
		}
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	scale := mch.Prefs.Scale.Get().(float64)
	backendName := strings.ToUpper(*backend)

	sync.creator <- func() (gui.GUI, error) {
		switch backendName {
		case "SDL":
			return sdlwindow.NewWindow(windowTitle, scale)
		case "EBITEN":
			return ebitenwindow.NewWindow(windowTitle, scale)
		}
		return nil, fmt.Errorf("unknown gui backend (%s)", backendName)
	}

	var g gui.GUI
	select {
	case g = <-sync.creation:
	case err := <-sync.creationError:
		return err
	}
	defer close(sync.guiDone)

	if m, ok := g.(limiter.Monitor); ok {
		mch.Display.SetMonitor(m)
	}
	mch.Display.AddFrameRenderer(g)

	mch.SetMode80x25()
	if len(md.RemainingArgs()) == 1 {
		b, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}
		mch.Print(0, 0, string(b), 0x07)
	} else {
		demoPage(mch)
	}

	h := &keyHandler{mch: mch}
	return mch.Run(func() bool {
		for {
			select {
			case ev := <-g.Events():
				if !h.handle(ev) {
					return false
				}
			case <-sync.interrupt:
				return false
			default:
				return true
			}
		}
	})
}

func headless(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	create := commonFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run")
	useDigest := md.AddBool("digest", false, "print the digest of the frames")
	shot := md.AddString("screenshot", "", "save the final frame to a PNG file")
	md.AdditionalHelp("The optional argument is a Lua script run before the frames.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mch, err := create()
	if err != nil {
		return err
	}
	defer mch.End()

	mch.Display.SetFPSCap(false)

	var dig *digest.Video
	if *useDigest {
		dig = digest.NewVideo(mch.Display)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		mch.SetMode80x25()
		demoPage(mch)
	case 1:
		scr := script.NewScript(mch, os.Stdout)
		defer scr.Close()
		ctx, cancel := interruptContext(sync)
		defer cancel()
		if err := scr.RunFile(ctx, md.GetArg(0)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if err := mch.RunFrames(*frames); err != nil {
		return err
	}

	if dig != nil {
		fmt.Println(dig.Hash())
	}

	if *shot != "" {
		f, err := os.Create(*shot)
		if err != nil {
			return err
		}
		if err := screenshot.Write(f, mch.Display.Image(), mch.Prefs.Scale.Get().(float64)); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()

	create := commonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mch, err := create()
	if err != nil {
		return err
	}
	defer mch.End()

	// the monitor runs frames on request. there is no reason to wait for
	// them
	mch.Display.SetFPSCap(false)

	return monitor.NewMonitor(mch, os.Stdin, os.Stdout).Run()
}

func scriptMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	create := commonFlags(md)
	fpsCap := md.AddBool("fpscap", false, "run frames in real time")
	md.AdditionalHelp("The argument is the Lua script to run.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires a script file", md)
	}

	mch, err := create()
	if err != nil {
		return err
	}
	defer mch.End()

	mch.Display.SetFPSCap(*fpsCap)

	scr := script.NewScript(mch, os.Stdout)
	defer scr.Close()

	ctx, cancel := interruptContext(sync)
	defer cancel()

	return scr.RunFile(ctx, md.GetArg(0))
}

// the returned context is cancelled on interrupt
func interruptContext(sync *mainSync) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-sync.interrupt:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
