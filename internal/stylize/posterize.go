package stylize

import (
	"image"

	"github.com/ironsheep/image-transform/internal/luminance"
)

// Posterize reduces buf to two tones with a single global threshold: a pixel
// is paper when its luminance is >= opts.Threshold and ink otherwise.
//
// # Errors
//
//   - ErrEmptyInput if buf is nil or empty
//   - *ParamError (ErrInvalidParameter) if the threshold is outside [0,255]
func Posterize(buf *luminance.Buffer, opts PosterizeOptions) (*image.Paletted, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := checkInput(buf); err != nil {
		return nil, err
	}

	w, h := buf.Width(), buf.Height()
	duo := opts.Duotone.orDefault()
	dst := image.NewPaletted(image.Rect(0, 0, w, h), duo.Palette())
	workers := workerCount(opts.Workers, h)
	Logger().Debug("posterize", "width", w, "height", h, "threshold", opts.Threshold, "workers", workers)

	// lut maps each luminance to its palette index.
	var lut [256]uint8
	for l := range lut {
		if l >= opts.Threshold {
			lut[l] = PaperIndex
		}
	}

	forEachBand(h, workers, func(start, end int) {
		for y := start; y < end; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+w]
			for x, l := range buf.Row(y) {
				row[x] = lut[l]
			}
		}
	})

	return dst, nil
}
