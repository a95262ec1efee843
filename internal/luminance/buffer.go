package luminance

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrEmpty is returned when a buffer would have zero width or height.
	ErrEmpty = errors.New("empty luminance buffer")

	// ErrOutOfBounds is returned by Get for coordinates outside the buffer.
	ErrOutOfBounds = errors.New("coordinates outside luminance buffer")
)

// Buffer is an immutable grid of 8-bit brightness samples.
//
// Samples are stored row-major, one byte per pixel, with (0,0) at the
// top-left corner. A Buffer is never modified after construction, so it can
// be shared between goroutines without locking.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// New creates a Buffer of the given dimensions from row-major samples.
//
// The samples are copied; the caller may reuse pix afterwards.
//
// # Errors
//
//   - ErrEmpty if width or height is not positive
//   - an error if len(pix) != width*height
func New(width, height int, pix []uint8) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmpty, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("sample count %d does not match %dx%d", len(pix), width, height)
	}
	b := &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, len(pix)),
	}
	copy(b.pix, pix)
	return b, nil
}

// Uniform creates a Buffer where every sample has the value v.
func Uniform(width, height int, v uint8) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmpty, width, height)
	}
	pix := make([]uint8, width*height)
	for i := range pix {
		pix[i] = v
	}
	return &Buffer{width: width, height: height, pix: pix}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Empty reports whether b is nil or has no samples.
func (b *Buffer) Empty() bool {
	return b == nil || b.width <= 0 || b.height <= 0
}

// Get returns the sample at (x, y).
//
// Valid X range is 0 to Width()-1 and valid Y range is 0 to Height()-1.
// Anything else returns ErrOutOfBounds.
func (b *Buffer) Get(x, y int) (uint8, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.pix[y*b.width+x], nil
}

// Row returns the samples of row y. The slice aliases the buffer and must
// not be written to.
func (b *Buffer) Row(y int) []uint8 {
	off := y * b.width
	return b.pix[off : off+b.width : off+b.width]
}

// Image returns the buffer as a new *image.Gray with bounds (0,0)-(W,H).
func (b *Buffer) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}
