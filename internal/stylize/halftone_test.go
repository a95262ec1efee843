package stylize

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/image-transform/internal/luminance"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// countColor counts pixels of img inside r equal to c.
func countColor(img *image.RGBA, r image.Rectangle, c color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestHalftone_Dimensions(t *testing.T) {
	tests := []struct {
		w, h, dot, scale int
		wantW, wantH     int
	}{
		{16, 16, 8, 1, 16, 16},
		{20, 13, 8, 2, 40, 26},
		{7, 3, 8, 1, 7, 3},
		{5, 5, 1, 3, 15, 15},
		{100, 60, 12, 1, 100, 60},
	}

	for _, tt := range tests {
		opts := DefaultHalftoneOptions()
		opts.DotSize = tt.dot
		opts.Scale = tt.scale
		out, err := Halftone(gradientBuffer(t, tt.w, tt.h), opts)
		if err != nil {
			t.Fatalf("Halftone(%dx%d, S=%d, K=%d) failed: %v", tt.w, tt.h, tt.dot, tt.scale, err)
		}
		if out.Bounds() != image.Rect(0, 0, tt.wantW, tt.wantH) {
			t.Errorf("Halftone(%dx%d, S=%d, K=%d): got %v, want %dx%d",
				tt.w, tt.h, tt.dot, tt.scale, out.Bounds(), tt.wantW, tt.wantH)
		}
	}
}

func TestHalftone_White(t *testing.T) {
	out, err := Halftone(uniformBuffer(t, 24, 24, 255), DefaultHalftoneOptions())
	if err != nil {
		t.Fatalf("Halftone failed: %v", err)
	}
	if n := countColor(out, out.Bounds(), white); n != 24*24 {
		t.Errorf("white input: got %d paper pixels, want %d", n, 24*24)
	}
}

func TestHalftone_BlackCell(t *testing.T) {
	out, err := Halftone(uniformBuffer(t, 8, 8, 0), DefaultHalftoneOptions())
	if err != nil {
		t.Fatalf("Halftone failed: %v", err)
	}

	// Radius 4 around (4,4): centre and edge midpoints are ink, corners paper.
	inkAt := [][2]int{{3, 3}, {4, 4}, {0, 4}, {7, 3}, {4, 0}, {3, 7}}
	for _, p := range inkAt {
		if got := out.RGBAAt(p[0], p[1]); got != black {
			t.Errorf("pixel %v: got %v, want ink", p, got)
		}
	}
	paperAt := [][2]int{{0, 0}, {7, 0}, {0, 7}, {7, 7}}
	for _, p := range paperAt {
		if got := out.RGBAAt(p[0], p[1]); got != white {
			t.Errorf("pixel %v: got %v, want paper", p, got)
		}
	}
}

func TestHalftone_DarkerMeansMoreInk(t *testing.T) {
	prev := -1
	for _, l := range []uint8{255, 220, 180, 128, 64, 0} {
		opts := DefaultHalftoneOptions()
		opts.DotSize = 16
		opts.Scale = 2
		out, err := Halftone(uniformBuffer(t, 16, 16, l), opts)
		if err != nil {
			t.Fatalf("Halftone failed: %v", err)
		}
		n := countColor(out, out.Bounds(), black)
		if n < prev {
			t.Errorf("L=%d: %d ink pixels, fewer than %d for a lighter cell", l, n, prev)
		}
		prev = n
	}
}

func TestHalftone_NoBleedIntoNeighbours(t *testing.T) {
	// Left cell black, right cell white
	pix := make([]uint8, 16*8)
	for y := 0; y < 8; y++ {
		for x := 8; x < 16; x++ {
			pix[y*16+x] = 255
		}
	}
	buf, _ := luminance.New(16, 8, pix)

	for _, aa := range []bool{false, true} {
		opts := DefaultHalftoneOptions()
		opts.Scale = 3
		opts.FillFactor = 5 // far beyond the cap
		opts.Antialias = aa
		out, err := Halftone(buf, opts)
		if err != nil {
			t.Fatalf("Halftone failed: %v", err)
		}
		right := image.Rect(24, 0, 48, 24)
		if n := countColor(out, right, white); n != right.Dx()*right.Dy() {
			t.Errorf("antialias=%v: right cell has %d non-paper pixels", aa, right.Dx()*right.Dy()-n)
		}
	}
}

func TestHalftone_TruncatedCell(t *testing.T) {
	// 10px wide: second column of cells is 2px wide
	out, err := Halftone(uniformBuffer(t, 10, 8, 0), DefaultHalftoneOptions())
	if err != nil {
		t.Fatalf("Halftone failed: %v", err)
	}
	edge := image.Rect(8, 0, 10, 8)
	if n := countColor(out, edge, black); n == 0 {
		t.Error("truncated cell should carry part of its dot")
	}
}

func TestHalftone_Antialias(t *testing.T) {
	opts := DefaultHalftoneOptions()
	opts.DotSize = 16
	opts.Scale = 2
	opts.Antialias = true
	out, err := Halftone(uniformBuffer(t, 16, 16, 0), opts)
	if err != nil {
		t.Fatalf("Halftone failed: %v", err)
	}

	if got := out.RGBAAt(16, 16); got != black {
		t.Errorf("dot centre: got %v, want ink", got)
	}
	if got := out.RGBAAt(0, 0); got != white {
		t.Errorf("cell corner: got %v, want paper", got)
	}

	partial := 0
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r := out.RGBAAt(x, y).R; r > 0 && r < 255 {
				partial++
			}
		}
	}
	if partial == 0 {
		t.Error("antialiased dot has no partially covered pixels")
	}

	// A white cell gets no dot at all
	light, _ := Halftone(uniformBuffer(t, 16, 16, 255), opts)
	if n := countColor(light, light.Bounds(), white); n != 32*32 {
		t.Errorf("white input: got %d paper pixels, want %d", n, 32*32)
	}
}

func TestHalftone_Duotone(t *testing.T) {
	d, err := ParseDuotone("navy", "#FFF8E7")
	if err != nil {
		t.Fatalf("ParseDuotone failed: %v", err)
	}
	opts := DefaultHalftoneOptions()
	opts.Duotone = d
	out, err := Halftone(uniformBuffer(t, 8, 8, 0), opts)
	if err != nil {
		t.Fatalf("Halftone failed: %v", err)
	}
	if got := out.RGBAAt(4, 4); got != d.InkRGBA() {
		t.Errorf("dot: got %v, want %v", got, d.InkRGBA())
	}
	if got := out.RGBAAt(0, 0); got != d.PaperRGBA() {
		t.Errorf("background: got %v, want %v", got, d.PaperRGBA())
	}
}

func TestHalftone_DeterministicAcrossWorkers(t *testing.T) {
	buf := gradientBuffer(t, 83, 61)
	for _, aa := range []bool{false, true} {
		opts := DefaultHalftoneOptions()
		opts.DotSize = 6
		opts.Scale = 2
		opts.Antialias = aa
		opts.Workers = 1
		ref, err := Halftone(buf, opts)
		if err != nil {
			t.Fatalf("Halftone failed: %v", err)
		}
		for _, workers := range []int{0, 2, 3, 11, 100} {
			opts.Workers = workers
			out, err := Halftone(buf, opts)
			if err != nil {
				t.Fatalf("Halftone failed: %v", err)
			}
			if !bytes.Equal(ref.Pix, out.Pix) {
				t.Errorf("antialias=%v workers=%d produced different output", aa, workers)
			}
		}
	}
}

func TestHalftone_InvalidOptions(t *testing.T) {
	buf := uniformBuffer(t, 8, 8, 100)
	tests := []struct {
		name   string
		modify func(*HalftoneOptions)
		param  string
	}{
		{"zero dot size", func(o *HalftoneOptions) { o.DotSize = 0 }, "dot-size"},
		{"negative dot size", func(o *HalftoneOptions) { o.DotSize = -4 }, "dot-size"},
		{"zero scale", func(o *HalftoneOptions) { o.Scale = 0 }, "scale"},
		{"negative scale", func(o *HalftoneOptions) { o.Scale = -1 }, "scale"},
		{"zero fill", func(o *HalftoneOptions) { o.FillFactor = 0 }, "fill"},
		{"negative fill", func(o *HalftoneOptions) { o.FillFactor = -0.5 }, "fill"},
		{"NaN fill", func(o *HalftoneOptions) { o.FillFactor = math.NaN() }, "fill"},
		{"infinite fill", func(o *HalftoneOptions) { o.FillFactor = math.Inf(1) }, "fill"},
		{"huge scale", func(o *HalftoneOptions) { o.Scale = 1 << 20 }, "scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultHalftoneOptions()
			tt.modify(&opts)
			out, err := Halftone(buf, opts)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("got %v, want ErrInvalidParameter", err)
			}
			if out != nil {
				t.Error("got partial output")
			}
			var pe *ParamError
			if !errors.As(err, &pe) || pe.Name != tt.param {
				t.Errorf("want ParamError for %s, got %v", tt.param, err)
			}
		})
	}
}

func TestHalftone_OutputPixelLimit(t *testing.T) {
	// Each side is within maxOutputDim, but the total is 2^32 pixels.
	big := uniformBuffer(t, 2048, 2048, 0)
	opts := DefaultHalftoneOptions()
	opts.Scale = 32

	out, err := Halftone(big, opts)
	var pe *ParamError
	if !errors.As(err, &pe) || pe.Name != "scale" {
		t.Fatalf("got %v, want ParamError for scale", err)
	}
	if out != nil {
		t.Error("got partial output")
	}

	// A long thin output at the side limit stays under the total.
	thin := uniformBuffer(t, maxOutputDim/16, 1, 255)
	opts.Scale = 16
	out, err = Halftone(thin, opts)
	if err != nil {
		t.Fatalf("Halftone failed: %v", err)
	}
	if b := out.Bounds(); b.Dx() != maxOutputDim || b.Dy() != 16 {
		t.Errorf("dimensions: got %v, want %dx16", b, maxOutputDim)
	}
}

func TestHalftone_EmptyInput(t *testing.T) {
	if _, err := Halftone(nil, DefaultHalftoneOptions()); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}
}

func TestDotRadius(t *testing.T) {
	tests := []struct {
		name string
		mean float64
		size int
		fill float64
		want float64
	}{
		{"black full fill", 0, 8, 1, 4},
		{"white", 255, 8, 1, 0},
		{"mid gray", 127.5, 8, 1, 2},
		{"black reduced fill", 0, 10, 0.8, 4},
		{"black overfilled is capped", 0, 8, 3, 4},
		{"odd size", 0, 7, 1, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DotRadius(tt.mean, tt.size, tt.fill)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DotRadius(%v, %d, %v): got %v, want %v", tt.mean, tt.size, tt.fill, got, tt.want)
			}
		})
	}
}

func TestDotRadius_Bounds(t *testing.T) {
	for _, size := range []int{1, 2, 5, 8, 13} {
		for _, fill := range []float64{0.25, 0.7, 1} {
			limit := float64(size) / 2 * fill
			for mean := 0; mean <= 255; mean++ {
				r := DotRadius(float64(mean), size, fill)
				if r < 0 || r > limit+1e-12 {
					t.Fatalf("DotRadius(%d, %d, %v) = %v outside [0, %v]", mean, size, fill, r, limit)
				}
			}
		}
	}
}

func TestCellMean(t *testing.T) {
	buf, _ := luminance.New(3, 2, []uint8{0, 10, 20, 30, 40, 50})

	tests := []struct {
		x0, y0, x1, y1 int
		want           float64
	}{
		{0, 0, 3, 2, 25},
		{0, 0, 1, 1, 0},
		{1, 0, 3, 2, 30},
		{2, 1, 3, 2, 50},
	}
	for _, tt := range tests {
		if got := cellMean(buf, tt.x0, tt.y0, tt.x1, tt.y1); got != tt.want {
			t.Errorf("cellMean(%d,%d,%d,%d): got %v, want %v", tt.x0, tt.y0, tt.x1, tt.y1, got, tt.want)
		}
	}
}
