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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure and carry on. The Demand functions
// stop the test immediately. ExpectSuccess() and ExpectFailure() interpret
// their argument according to its type: a bool is a success if it is true
// and an error is a success if it is nil.
//
// Note that an untyped nil is considered a success. This follows how errors
// are usually handled in Go, where nil indicates no error.
//
// CompareWriter and RingWriter implement io.Writer and are used to capture
// output for comparison.
package test
