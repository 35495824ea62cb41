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

package font

import (
	"io"
	"os"

	"github.com/NishiOwO/86Box/curated"
)

// Sentinal error patterns.
const (
	InvalidROM = "font: invalid rom: %v"
	ROMFile    = "font: %v"
)

// the character ROM holds rows 0 to 7 of every glyph followed by rows 8 to 15
// of every glyph
const romHalf = Glyphs * 8

// ROMSize is the minimum number of bytes in an MDA character ROM dump. Dumps
// of the full 8KiB chip have the CGA fonts in the second half. These are
// ignored.
const ROMSize = romHalf * 2

// LoadROM reads a dump of the MDA character ROM.
func LoadROM(r io.Reader) (*Font, error) {
	data := make([]byte, ROMSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, curated.Errorf(InvalidROM, err)
	}

	var f Font
	for c := range Glyphs {
		for d := range 8 {
			f[c][d] = data[c*8+d]
			f[c][d+8] = data[romHalf+c*8+d]
		}
	}

	return &f, nil
}

// LoadFile reads the ROM dump in the named file.
func LoadFile(filename string) (*Font, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(ROMFile, err)
	}
	defer f.Close()
	return LoadROM(f)
}
