package stylize

import (
	"image"

	"github.com/ironsheep/image-transform/internal/luminance"
)

// Dither binarizes buf with 8x8 ordered (Bayer) dithering.
//
// Each pixel becomes paper when luminance/255 > matrix[y mod 8][x mod 8]/64
// and ink otherwise. No error is carried between pixels, so a flat mid-gray
// area renders as the matrix's regular cross-hatch pattern. The output has
// the same dimensions as buf; they need not be multiples of 8.
//
// # Errors
//
//   - ErrEmptyInput if buf is nil or empty
func Dither(buf *luminance.Buffer, opts DitherOptions) (*image.Paletted, error) {
	if err := checkInput(buf); err != nil {
		return nil, err
	}

	w, h := buf.Width(), buf.Height()
	duo := opts.Duotone.orDefault()
	dst := image.NewPaletted(image.Rect(0, 0, w, h), duo.Palette())
	workers := workerCount(opts.Workers, h)
	Logger().Debug("dither", "width", w, "height", h, "duotone", duo.String(), "workers", workers)

	forEachBand(h, workers, func(start, end int) {
		for y := start; y < end; y++ {
			src := buf.Row(y)
			row := dst.Pix[y*dst.Stride : y*dst.Stride+w]
			tile := bayer8[(y%BayerSize)*BayerSize : (y%BayerSize+1)*BayerSize]
			for x, l := range src {
				if aboveBayer(l, tile[x%BayerSize]) {
					row[x] = PaperIndex
				} else {
					row[x] = InkIndex
				}
			}
		}
	})

	return dst, nil
}
