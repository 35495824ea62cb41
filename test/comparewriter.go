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

package test

import "bytes"

// CompareWriter collects everything written to it so that it can be compared
// with the expected output.
type CompareWriter struct {
	bytes.Buffer
}

// Clear forgets everything written so far.
func (cw *CompareWriter) Clear() {
	cw.Reset()
}

// Compare returns true if the output written so far equals s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.String() == s
}
