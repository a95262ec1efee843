package luminance

import (
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Weighting selects how RGB channels are combined into one brightness value.
type Weighting int

const (
	// Perceptual uses ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B).
	Perceptual Weighting = iota

	// Average uses the arithmetic mean of the three channels.
	Average
)

// String returns the lower-case name of the weighting.
func (w Weighting) String() string {
	switch w {
	case Perceptual:
		return "perceptual"
	case Average:
		return "average"
	default:
		return fmt.Sprintf("Weighting(%d)", int(w))
	}
}

// ParseWeighting converts a name accepted on the command line into a Weighting.
func ParseWeighting(s string) (Weighting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "perceptual", "bt601", "luma":
		return Perceptual, nil
	case "average", "mean":
		return Average, nil
	default:
		return 0, fmt.Errorf("unknown weighting: %s", s)
	}
}

// FromImage converts img to a luminance Buffer.
//
// The alpha channel is ignored. Both weightings are monotonic in each channel
// and map black to 0 and white to 255, so the [0,255] range is preserved.
//
// # Errors
//
//   - ErrEmpty if img has no pixels
//   - an error for an unknown Weighting
func FromImage(img image.Image, w Weighting) (*Buffer, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmpty, width, height)
	}

	// Straight-alpha copy with alpha forced opaque.
	opaque := imaging.Clone(img)
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 0xff
	}

	pix := make([]uint8, width*height)
	switch w {
	case Perceptual:
		gray := imaging.Grayscale(opaque)
		gb := gray.Bounds()
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pix[y*width+x] = gray.NRGBAAt(gb.Min.X+x, gb.Min.Y+y).R
			}
		}
	case Average:
		gray := effect.GrayscaleWithWeights(opaque, 1.0/3, 1.0/3, 1.0/3)
		gb := gray.Bounds()
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pix[y*width+x] = gray.RGBAAt(gb.Min.X+x, gb.Min.Y+y).R
			}
		}
	default:
		return nil, fmt.Errorf("unsupported weighting: %v", w)
	}

	return &Buffer{width: width, height: height, pix: pix}, nil
}
