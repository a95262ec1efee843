package stylize

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/ironsheep/image-transform/internal/luminance"
)

// Output size limits. maxOutputPixels bounds the RGBA allocation to 1 GiB.
const (
	maxOutputDim    = 1 << 16
	maxOutputPixels = 1 << 28
)

// Halftone renders buf as a grid of dots whose size encodes tone, like a
// newsprint screen.
//
// # Algorithm
//
//  1. Partition buf into DotSize×DotSize cells, row-major. Cells on the right
//     and bottom edge are truncated to the image bounds.
//  2. Compute each cell's arithmetic mean luminance.
//  3. Map the mean to a radius with DotRadius: black gives the largest dot,
//     white gives none.
//  4. Draw an ink disc of radius×Scale centred on the nominal (untruncated)
//     cell centre, on a paper background, clipped to the cell's own output
//     rectangle.
//
// The output is (Width×Scale) × (Height×Scale) pixels. In binary mode the
// output radius is rounded half-up to whole pixels and a pixel is ink when
// its centre lies within that radius; with Antialias the disc edge carries
// partial coverage and dots smaller than half a pixel are skipped.
//
// # Errors
//
//   - ErrEmptyInput if buf is nil or empty
//   - *ParamError (ErrInvalidParameter) for DotSize < 1, Scale < 1, a
//     non-positive or non-finite FillFactor, or an output wider or taller
//     than 65536 pixels or larger than 2^28 pixels in total
func Halftone(buf *luminance.Buffer, opts HalftoneOptions) (*image.RGBA, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := checkInput(buf); err != nil {
		return nil, err
	}

	w, h := buf.Width(), buf.Height()
	s, k := opts.DotSize, opts.Scale
	if w > maxOutputDim/k || h > maxOutputDim/k || int64(w*k)*int64(h*k) > maxOutputPixels {
		return nil, &ParamError{Name: "scale", Value: k, Reason: "output image too large"}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w*k, h*k))
	duo := opts.Duotone.orDefault()
	ink := duo.InkRGBA()
	paper := image.NewUniform(duo.PaperRGBA())

	cellRows := (h-1)/s + 1
	cellCols := (w-1)/s + 1
	workers := workerCount(opts.Workers, cellRows)
	Logger().Debug("halftone",
		"width", w, "height", h,
		"dotSize", s, "scale", k, "fill", opts.FillFactor, "antialias", opts.Antialias,
		"cells", cellCols*cellRows, "workers", workers)

	half := float64(s) / 2
	forEachBand(cellRows, workers, func(start, end int) {
		var z *vector.Rasterizer
		if opts.Antialias {
			z = vector.NewRasterizer(1, 1)
		}

		// The band owns output rows [start*s*k, min(end*s, h)*k).
		band := image.Rect(0, start*s*k, w*k, min(end*s, h)*k)
		draw.Draw(dst, band, paper, image.Point{}, draw.Src)

		for row := start; row < end; row++ {
			y0 := row * s
			y1 := min(y0+s, h)
			for col := 0; col < cellCols; col++ {
				x0 := col * s
				x1 := min(x0+s, w)

				mean := cellMean(buf, x0, y0, x1, y1)
				r := DotRadius(mean, s, opts.FillFactor) * float64(k)
				cx := (float64(x0) + half) * float64(k)
				cy := (float64(y0) + half) * float64(k)
				clip := image.Rect(x0*k, y0*k, x1*k, y1*k)

				if opts.Antialias {
					if r >= 0.5 {
						fillCircleAA(z, dst, clip, cx, cy, r, ink)
					}
					continue
				}
				if rq := math.Floor(r + 0.5); rq > 0 {
					FillCircle(dst, clip, cx, cy, rq, ink)
				}
			}
		}
	})

	return dst, nil
}

// DotRadius maps a cell's mean luminance (0-255) to a dot radius in source
// pixels: (1 - mean/255) × (dotSize/2) × fill.
//
// The result is always within [0, dotSize/2]; a fill factor above 1 cannot
// push a dot into the neighbouring cells.
func DotRadius(mean float64, dotSize int, fill float64) float64 {
	half := float64(dotSize) / 2
	r := (1 - mean/255) * half * fill
	if r > half {
		r = half
	}
	if r < 0 || math.IsNaN(r) {
		r = 0
	}
	return r
}

// cellMean returns the arithmetic mean of buf over [x0,x1) × [y0,y1).
func cellMean(buf *luminance.Buffer, x0, y0, x1, y1 int) float64 {
	var sum uint64
	for y := y0; y < y1; y++ {
		for _, l := range buf.Row(y)[x0:x1] {
			sum += uint64(l)
		}
	}
	return float64(sum) / float64((x1-x0)*(y1-y0))
}
