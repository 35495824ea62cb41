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

// Package digest contains an implementation of the display.FrameRenderer
// interface that produces a cryptographic hash of every frame. The hash can be
// compared with the hash from a previous run. If the hashes differ then
// something has changed. It is the basis of the regression tests.
package digest

// Digest implementations return a cryptographic hash of the output so far.
type Digest interface {
	Hash() string
	ResetDigest()
}
