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

package logger

import (
	"io"
)

// Permission is implemented by anything that can veto a log entry.
type Permission interface {
	AllowLogging() bool
}

type always struct{}

func (always) AllowLogging() bool {
	return true
}

// Allow is the Permission for entries that should always be recorded.
var Allow Permission = always{}

// size of the package level log
const centralEntries = 256

var central = NewLogger(centralEntries)

// Log records an entry in the package level log.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf is like Log but the detail is built from a format pattern.
func Logf(perm Permission, tag string, pattern string, args ...any) {
	central.Logf(perm, tag, pattern, args...)
}

// Tail writes the most recent entries in the package level log.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho copies every new entry in the package level log to output. A nil
// output stops the echo.
func SetEcho(output io.Writer, writeRecent bool) {
	central.SetEcho(output, writeRecent)
}
