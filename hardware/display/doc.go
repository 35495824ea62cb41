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

// Package display implements the mda.Presentation interface. It owns the
// scanline buffer the adapter draws into and turns every presented frame into
// an image, which is passed to the FrameRenderers added to the display.
//
// Palette indices produced by the adapter are converted to colour with the
// Palette of the selected display scheme. The display scheme can be changed
// at any time.
//
// The display also owns the frame limiter. When the FPS cap is enabled the
// presentation of each frame waits for the limiter.
package display
