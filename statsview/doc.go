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

// Package statsview offers runtime statistics of the emulator over HTTP. The
// server is only built when the statsview build tag is present. Without the
// tag Available() returns false and Launch() does nothing.
//
// After launch the graphs are viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
package statsview

// Address of the statistics server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// URL returns the address of the statistics page.
func URL() string {
	return "http://" + Address + url
}
