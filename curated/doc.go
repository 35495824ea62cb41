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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. It takes a pattern,
// placeholder values and returns an error. The pattern identifies the error:
//
//	const InvalidROM = "font: invalid rom: %d bytes"
//
//	e := curated.Errorf(InvalidROM, 100)
//	if curated.Is(e, InvalidROM) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("machine: %v", e)
//	if curated.Has(f, InvalidROM) {
//		fmt.Println("true")
//	}
//
// Chains are composed of parts separated by the sub-string ": ". The Error()
// function removes duplicate adjacent parts so that it is always safe to wrap
// an error with the name of the package it passes through. For example, the
// following prints "font: invalid rom: 100 bytes" and not "font: font: ...":
//
//	g := curated.Errorf("font: %v", e)
//	fmt.Println(g)
//
// Patterns for errors that are tested for should be stored as exported
// constants in the package that creates them.
package curated
