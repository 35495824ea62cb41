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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/hardware/display"
)

// Sentinal error patterns.
const (
	VideoDigest = "video digest: %v"
)

// Video is an implementation of the display.FrameRenderer interface. The
// hash of each frame is chained with the hash of the previous frame.
//
// Note that the use of sha1 is fine for this application because this is not a
// cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

const pixelDepth = 3

// NewVideo is the preferred method of initialisation for the Video type. The
// digest is added to the display as a FrameRenderer.
func NewVideo(dsp *display.Display) *Video {
	dig := &Video{}
	dsp.AddFrameRenderer(dig)
	return dig
}

func (dig *Video) String() string {
	return fmt.Sprintf("%d: %s", dig.frameNum, dig.Hash())
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
}

// Resize implements the display.FrameRenderer interface.
func (dig *Video) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return curated.Errorf(VideoDigest, fmt.Sprintf("invalid size %dx%d", width, height))
	}

	// room for the digest of the previous frame at the head of the pixels
	dig.pixels = make([]byte, len(dig.digest)+width*height*pixelDepth)
	return nil
}

// NewFrame implements the display.FrameRenderer interface.
func (dig *Video) NewFrame(frameNum int, img *image.RGBA) error {
	bounds := img.Bounds()
	if len(dig.pixels) != len(dig.digest)+bounds.Dx()*bounds.Dy()*pixelDepth {
		return curated.Errorf(VideoDigest, "frame does not match negotiated size")
	}

	copy(dig.pixels, dig.digest[:])

	i := len(dig.digest)
	for y := range bounds.Dy() {
		row := img.Pix[y*img.Stride:]
		for x := range bounds.Dx() {
			copy(dig.pixels[i:i+pixelDepth], row[x*4:x*4+pixelDepth])
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}

// EndRendering implements the display.FrameRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
