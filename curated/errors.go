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

package curated

import (
	"fmt"
	"strings"
)

// chain separator. adjacent parts that are the same are only printed once
const sep = ": "

type curated struct {
	pattern string
	values  []any
}

// Errorf returns an error identified by its pattern. Formatting is deferred
// until Error() is called.
func Errorf(pattern string, values ...any) error {
	return curated{pattern: pattern, values: values}
}

func (er curated) Error() string {
	parts := strings.Split(fmt.Sprintf(er.pattern, er.values...), sep)

	var b strings.Builder
	b.WriteString(parts[0])
	prev := parts[0]
	for _, p := range parts[1:] {
		if p == prev {
			continue
		}
		b.WriteString(sep)
		b.WriteString(p)
		prev = p
	}

	return b.String()
}

// Unwrap returns the first value that is an error, for the benefit of
// errors.Is() and errors.As().
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny is true if err was created by Errorf().
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is is true if err was created by Errorf() with the given pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has is like Is() but also looks at any curated errors in err's values,
// recursively.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}
	if er.pattern == pattern {
		return true
	}
	for _, v := range er.values {
		if e, ok := v.(error); ok && Has(e, pattern) {
			return true
		}
	}
	return false
}
