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

// Package ebitenwindow shows the display in a window managed by Ebitengine.
// It is an alternative to the sdlwindow package for platforms where SDL is
// not available.
package ebitenwindow

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/gui"
)

// Window is an implementation of the gui.GUI interface.
type Window struct {
	title string
	scale float64

	fb     *gui.FrameBuffer
	events chan gui.Event
	done   <-chan struct{}

	generation int
	frame      *ebiten.Image
	width      int
	height     int

	keys []ebiten.Key
}

var _ gui.GUI = (*Window)(nil)

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow(title string, scale float64) (*Window, error) {
	if scale <= 0 {
		return nil, curated.Errorf(gui.GUIError, "scale must be positive")
	}
	return &Window{
		title:      title,
		scale:      scale,
		fb:         gui.NewFrameBuffer(),
		events:     make(chan gui.Event, gui.EventQueueSize),
		generation: -1,
		width:      720,
		height:     350,
	}, nil
}

// Resize implements the display.FrameRenderer interface.
func (wnd *Window) Resize(width, height int) error {
	wnd.fb.Resize(width, height)
	return nil
}

// NewFrame implements the display.FrameRenderer interface.
func (wnd *Window) NewFrame(_ int, img *image.RGBA) error {
	wnd.fb.Write(img)
	return nil
}

// EndRendering implements the display.FrameRenderer interface.
func (wnd *Window) EndRendering() error {
	return nil
}

// Events implements the gui.GUI interface.
func (wnd *Window) Events() <-chan gui.Event {
	return wnd.events
}

// Run implements the gui.GUI interface. It must be called from the main
// thread.
func (wnd *Window) Run(done <-chan struct{}) error {
	wnd.done = done

	ebiten.SetWindowTitle(wnd.title)
	ebiten.SetWindowSize(int(float64(wnd.width)*wnd.scale), int(float64(wnd.height)*wnd.scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(wnd)
	if err != nil && err != ebiten.Termination {
		return curated.Errorf(gui.GUIError, err)
	}
	return nil
}

// Update implements the ebiten.Game interface.
func (wnd *Window) Update() error {
	select {
	case <-wnd.done:
		return ebiten.Termination
	default:
	}

	if ebiten.IsWindowBeingClosed() {
		gui.Push(wnd.events, gui.Event{ID: gui.EventQuit})
		return ebiten.Termination
	}

	mod := keyMod()

	wnd.keys = inpututil.AppendJustPressedKeys(wnd.keys[:0])
	for _, k := range wnd.keys {
		gui.Push(wnd.events, gui.Event{
			ID:   gui.EventKeyboard,
			Data: gui.EventDataKeyboard{Key: k.String(), Down: true, Mod: mod},
		})
	}

	wnd.keys = inpututil.AppendJustReleasedKeys(wnd.keys[:0])
	for _, k := range wnd.keys {
		gui.Push(wnd.events, gui.Event{
			ID:   gui.EventKeyboard,
			Data: gui.EventDataKeyboard{Key: k.String(), Down: false, Mod: mod},
		})
	}

	return nil
}

func keyMod() gui.KeyMod {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		return gui.KeyModShift
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		return gui.KeyModCtrl
	case ebiten.IsKeyPressed(ebiten.KeyAlt):
		return gui.KeyModAlt
	}
	return gui.KeyModNone
}

// Draw implements the ebiten.Game interface.
func (wnd *Window) Draw(screen *ebiten.Image) {
	wnd.fb.Read(func(img *image.RGBA, generation int) {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		if w == 0 || h == 0 {
			return
		}
		if generation != wnd.generation || wnd.frame == nil {
			wnd.generation = generation
			if wnd.frame != nil {
				wnd.frame.Deallocate()
			}
			wnd.frame = ebiten.NewImage(w, h)
			if w != wnd.width || h != wnd.height {
				wnd.width, wnd.height = w, h
				ebiten.SetWindowSize(int(float64(w)*wnd.scale), int(float64(h)*wnd.scale))
			}
		}
		wnd.frame.WritePixels(img.Pix)
	})

	// the texture is redrawn every call because ebiten clears the screen
	// between frames
	if wnd.frame == nil {
		return
	}

	screen.DrawImage(wnd.frame, nil)
}

// Layout implements the ebiten.Game interface. The screen is the size of the
// frame and is scaled by ebiten to the window.
func (wnd *Window) Layout(_, _ int) (int, int) {
	return wnd.width, wnd.height
}
