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

package easyterm

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyInterrupt = 3 // end-of-text character
	KeyTab       = 9
	KeyCarriage  = 13
	KeyEsc       = 27
	KeyBackspace = 127
)

// ClearScreen and CursorHome are the ANSI sequences used to redraw a panel in
// place.
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
)
