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

// Package paths contains functions to prepare paths to program resources.
//
// The policy of ResourcePath() is simple: if the directory ".mda86" is present
// in the program's current directory then that is the base path. If it is not
// present then the "mda86" directory in the user's config directory is used
// (see os.UserConfigDir()). For example, on a Linux system:
//
//	p, _ := paths.ResourcePath("", "preferences")
//
// returns "/home/user/.config/mda86/preferences".
package paths
