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

// Package gui defines the interface implemented by the window backends,
// together with the events they send and the frame buffer they share.
//
// The backends are in sub-packages: sdlwindow uses SDL with OpenGL and
// ebitenwindow uses Ebitengine. Both receive frames from the display on the
// emulation goroutine and present them from the main thread.
package gui

import "github.com/NishiOwO/86Box/hardware/display"

// GUI defines the operations that can be performed on the window backends.
type GUI interface {
	display.FrameRenderer

	// Run the GUI until the window is closed or until done is closed. Must
	// be called from the main thread.
	Run(done <-chan struct{}) error

	// Events returns the channel over which user events are sent.
	Events() <-chan Event
}

// Sentinal error patterns.
const (
	GUIError = "gui: %v"
)
