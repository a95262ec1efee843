// Package stylize implements the print-style transforms: ordered dithering,
// two-tone posterization and dot halftoning.
//
// Every transform reads a *luminance.Buffer and returns a new image; the
// input is never modified and no state is kept between calls. Options are
// passed explicitly as structs; the Default*Options functions return the
// documented defaults.
//
// # Output
//
// Dither and Posterize return an *image.Paletted with two entries, ink at
// InkIndex and paper at PaperIndex, which the PNG encoder writes as a 1-bit
// image. Halftone returns an *image.RGBA because anti-aliased dot edges need
// intermediate colours.
//
// # Ordered Dithering
//
// A pixel with luminance L at (x, y) becomes paper when
//
//	L/255 > M[y mod 8][x mod 8] / 64
//
// where M is the fixed 8×8 Bayer matrix returned by BayerMatrix. Over any
// 8-aligned 8×8 tile of a flat input, the number of paper pixels is the count
// of matrix entries below L×64/255.
//
// # Concurrency
//
// Work is split into horizontal bands of rows (cell rows for Halftone) that
// run concurrently. Bands never write to the same output pixels, so results
// are bitwise identical for any Workers value.
//
// # Errors
//
// Invalid options are reported as *ParamError, which matches
// ErrInvalidParameter with errors.Is, before any pixel is processed. A nil or
// empty buffer yields ErrEmptyInput.
package stylize
