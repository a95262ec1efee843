package stylize

import "math"

// Default option values.
const (
	DefaultThreshold  = 128
	DefaultDotSize    = 8
	DefaultScale      = 1
	DefaultFillFactor = 1.0
)

// DitherOptions configures Dither.
type DitherOptions struct {
	// Duotone selects the output colours.
	Duotone Duotone

	// Workers is the number of row bands processed concurrently.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultDitherOptions returns black-on-white output with automatic workers.
func DefaultDitherOptions() DitherOptions {
	return DitherOptions{Duotone: DefaultDuotone()}
}

// PosterizeOptions configures Posterize.
type PosterizeOptions struct {
	// Threshold is the split point (0-255). Pixels with luminance >= Threshold
	// become paper, all others ink.
	Threshold int

	Duotone Duotone
	Workers int
}

// DefaultPosterizeOptions returns a threshold of 128.
func DefaultPosterizeOptions() PosterizeOptions {
	return PosterizeOptions{
		Threshold: DefaultThreshold,
		Duotone:   DefaultDuotone(),
	}
}

// Validate checks the threshold range. Out-of-range values are rejected
// rather than clamped.
func (o PosterizeOptions) Validate() error {
	if o.Threshold < 0 || o.Threshold > 255 {
		return &ParamError{Name: "threshold", Value: o.Threshold, Reason: "must be in [0,255]"}
	}
	return nil
}

// HalftoneOptions configures Halftone.
type HalftoneOptions struct {
	// DotSize is the edge length of a halftone cell in source pixels (>= 1).
	DotSize int

	// Scale is the integer output upscale factor (>= 1).
	Scale int

	// FillFactor scales the largest dot relative to half the cell width.
	// 1.0 lets a black cell's dot touch the cell edges. Values above 1 are
	// accepted but the radius is always capped at half the cell width.
	FillFactor float64

	// Antialias renders dot edges with partial coverage instead of whole
	// ink/paper pixels.
	Antialias bool

	Duotone Duotone
	Workers int
}

// DefaultHalftoneOptions returns 8px cells at scale 1, full fill, binary dots.
func DefaultHalftoneOptions() HalftoneOptions {
	return HalftoneOptions{
		DotSize:    DefaultDotSize,
		Scale:      DefaultScale,
		FillFactor: DefaultFillFactor,
		Duotone:    DefaultDuotone(),
	}
}

// Validate checks DotSize, Scale and FillFactor.
func (o HalftoneOptions) Validate() error {
	if o.DotSize < 1 {
		return &ParamError{Name: "dot-size", Value: o.DotSize, Reason: "must be >= 1"}
	}
	if o.Scale < 1 {
		return &ParamError{Name: "scale", Value: o.Scale, Reason: "must be >= 1"}
	}
	if math.IsNaN(o.FillFactor) || math.IsInf(o.FillFactor, 0) || o.FillFactor <= 0 {
		return &ParamError{Name: "fill", Value: o.FillFactor, Reason: "must be a finite value > 0"}
	}
	return nil
}
