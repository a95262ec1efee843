package stylize

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the control point distance for approximating a quarter circle
// with one cubic Bézier curve.
const kappa = 0.5522847498307936

// FillCircle paints every pixel of dst inside clip whose centre lies within
// distance r of (cx, cy) with c. Coordinates are in dst space, with pixel
// (x, y) covering [x, x+1) × [y, y+1). Pixels outside clip are never
// touched, whatever the radius.
func FillCircle(dst *image.RGBA, clip image.Rectangle, cx, cy, r float64, c color.RGBA) {
	clip = clip.Intersect(dst.Bounds())
	if r <= 0 || clip.Empty() {
		return
	}

	// Only rows and columns that can contain a covered pixel centre.
	y0 := max(clip.Min.Y, int(math.Floor(cy-r)))
	y1 := min(clip.Max.Y, int(math.Ceil(cy+r))+1)
	x0 := max(clip.Min.X, int(math.Floor(cx-r)))
	x1 := min(clip.Max.X, int(math.Ceil(cx+r))+1)
	r2 := r * r

	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - cy
		dy2 := dy * dy
		if dy2 > r2 {
			continue
		}
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy2 <= r2 {
				dst.SetRGBA(x, y, c)
			}
		}
	}
}

// fillCircleAA composites a disc of colour c over dst with anti-aliased
// edges. The disc is rasterized into a mask the size of clip, so coverage
// outside clip is discarded. z is reused between calls and must not be
// shared between goroutines.
func fillCircleAA(z *vector.Rasterizer, dst *image.RGBA, clip image.Rectangle, cx, cy, r float64, c color.RGBA) {
	clip = clip.Intersect(dst.Bounds())
	if r <= 0 || clip.Empty() {
		return
	}

	z.Reset(clip.Dx(), clip.Dy())
	// Rasterizer space has clip.Min at the origin.
	ox := float32(cx - float64(clip.Min.X))
	oy := float32(cy - float64(clip.Min.Y))
	rr := float32(r)
	k := float32(kappa) * rr

	z.MoveTo(ox+rr, oy)
	z.CubeTo(ox+rr, oy+k, ox+k, oy+rr, ox, oy+rr)
	z.CubeTo(ox-k, oy+rr, ox-rr, oy+k, ox-rr, oy)
	z.CubeTo(ox-rr, oy-k, ox-k, oy-rr, ox, oy-rr)
	z.CubeTo(ox+k, oy-rr, ox+rr, oy-k, ox+rr, oy)
	z.ClosePath()

	z.Draw(dst, clip, image.NewUniform(c), image.Point{})
}
