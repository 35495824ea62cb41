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

// Package sdlwindow shows the display in an SDL window. The frame is drawn
// as an OpenGL texture on a quad, scaled to fit the window.
package sdlwindow

import (
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/gui"
	"github.com/NishiOwO/86Box/logger"
)

// Window is an implementation of the gui.GUI interface.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext

	fb     *gui.FrameBuffer
	events chan gui.Event

	scale float64

	// the generation of the frame buffer the texture was created for
	generation int
	frameW     int
	frameH     int
	texture    uint32
	quad       quad
}

var _ gui.GUI = (*Window)(nil)

// NewWindow is the preferred method of initialisation for the Window type. It
// must be called from the main thread. The window is hidden until the first
// frame.
func NewWindow(title string, scale float64) (*Window, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(gui.GUIError, fmt.Errorf("failed to initialise SDL2: %w", err))
	}

	wnd := &Window{
		fb:         gui.NewFrameBuffer(),
		events:     make(chan gui.Event, gui.EventQueueSize),
		scale:      scale,
		generation: -1,
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	var err error
	wnd.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(720*scale), int32(350*scale), sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(gui.GUIError, fmt.Errorf("failed to create window: %w", err))
	}

	wnd.glContext, err = wnd.window.GLCreateContext()
	if err != nil {
		wnd.destroy()
		return nil, curated.Errorf(gui.GUIError, fmt.Errorf("failed to create OpenGL context: %w", err))
	}
	if err := wnd.window.GLMakeCurrent(wnd.glContext); err != nil {
		wnd.destroy()
		return nil, curated.Errorf(gui.GUIError, fmt.Errorf("failed to set current OpenGL context: %w", err))
	}
	_ = sdl.GLSetSwapInterval(1)

	if err := gl.Init(); err != nil {
		wnd.destroy()
		return nil, curated.Errorf(gui.GUIError, fmt.Errorf("failed to initialise OpenGL: %w", err))
	}
	logger.Logf(logger.Allow, "sdlwindow", "OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if err := wnd.quad.create(); err != nil {
		wnd.destroy()
		return nil, curated.Errorf(gui.GUIError, err)
	}

	gl.GenTextures(1, &wnd.texture)
	gl.BindTexture(gl.TEXTURE_2D, wnd.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return wnd, nil
}

func (wnd *Window) destroy() {
	if wnd.texture != 0 {
		gl.DeleteTextures(1, &wnd.texture)
		wnd.texture = 0
	}
	wnd.quad.destroy()
	if wnd.glContext != nil {
		sdl.GLDeleteContext(wnd.glContext)
		wnd.glContext = nil
	}
	if wnd.window != nil {
		_ = wnd.window.Destroy()
		wnd.window = nil
	}
	sdl.Quit()
}

// MonitorRefreshRate implements the limiter.Monitor interface.
func (wnd *Window) MonitorRefreshRate() (float32, bool) {
	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil || mode.RefreshRate == 0 {
		return 0, false
	}
	return float32(mode.RefreshRate), true
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

// Run implements the gui.GUI interface. The window is destroyed when Run()
// returns.
func (wnd *Window) Run(done <-chan struct{}) error {
	defer wnd.destroy()

	for {
		select {
		case <-done:
			return nil
		default:
		}

		if quit := wnd.processEvents(); quit {
			gui.Push(wnd.events, gui.Event{ID: gui.EventQuit})
			return nil
		}

		if !wnd.render() {
			// no new frame. SDL_GL_SwapWindow() is what normally waits
			time.Sleep(time.Millisecond * 5)
		}
	}
}

func (wnd *Window) processEvents() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			gui.Push(wnd.events, gui.Event{
				ID: gui.EventKeyboard,
				Data: gui.EventDataKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: ev.Type == sdl.KEYDOWN,
					Mod:  keyMod(ev.Keysym.Mod),
				},
			})
		}
	}
	return false
}

func keyMod(mod uint16) gui.KeyMod {
	switch {
	case mod&(sdl.KMOD_LSHIFT|sdl.KMOD_RSHIFT) != 0:
		return gui.KeyModShift
	case mod&(sdl.KMOD_LCTRL|sdl.KMOD_RCTRL) != 0:
		return gui.KeyModCtrl
	case mod&(sdl.KMOD_LALT|sdl.KMOD_RALT) != 0:
		return gui.KeyModAlt
	}
	return gui.KeyModNone
}

// upload the frame to the texture and draw it. returns false if there was no
// new frame
func (wnd *Window) render() bool {
	drawn := wnd.fb.Read(func(img *image.RGBA, generation int) {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		if w == 0 || h == 0 {
			return
		}

		wnd.frameW, wnd.frameH = w, h
		gl.BindTexture(gl.TEXTURE_2D, wnd.texture)
		if generation != wnd.generation {
			wnd.generation = generation
			wnd.window.SetSize(int32(float64(w)*wnd.scale), int32(float64(h)*wnd.scale))
			wnd.window.Show()
			gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0,
				gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		} else {
			gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h),
				gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		}
	})
	if !drawn {
		return false
	}

	dw, dh := wnd.window.GLGetDrawableSize()
	gl.Viewport(0, 0, dw, dh)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Viewport(fit(dw, dh, wnd.frameW, wnd.frameH))
	wnd.quad.draw(wnd.texture)
	wnd.window.GLSwap()

	return true
}
