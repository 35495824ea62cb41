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

// Package screenshot writes frames from the display as PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/logger"
	"github.com/NishiOwO/86Box/paths"
)

// Sentinal error patterns.
const (
	ScreenshotError = "screenshot: %v"
)

// Scale returns the image scaled by the scale factor. Pixels are not
// interpolated.
func Scale(img image.Image, scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, curated.Errorf(ScreenshotError, fmt.Sprintf("invalid scale (%f)", scale))
	}
	if scale == 1.0 {
		return img, nil
	}

	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

// Write the image to w as a PNG, scaled by the scale factor.
func Write(w io.Writer, img image.Image, scale float64) error {
	scaled, err := Scale(img, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, scaled); err != nil {
		return curated.Errorf(ScreenshotError, err)
	}
	return nil
}

// Save the image to a uniquely named file in the current directory. The name
// of the file is returned.
func Save(img image.Image, scale float64) (string, error) {
	name := fmt.Sprintf("%s.png", paths.UniqueFilename("screenshot", "mda"))

	f, err := os.Create(name)
	if err != nil {
		return "", curated.Errorf(ScreenshotError, err)
	}

	err = Write(f, img, scale)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = curated.Errorf(ScreenshotError, cerr)
	}
	if err != nil {
		return "", err
	}

	logger.Logf(logger.Allow, "screenshot", "saved to %s", name)
	return name, nil
}
