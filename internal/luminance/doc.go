// Package luminance provides the shared input representation for the
// stylize transforms: a two-dimensional grid of 8-bit brightness samples.
//
// A Buffer is created once, either from raw samples with New or from a
// decoded image with FromImage, and is read-only afterwards. Coordinates are
// 0-based with (0,0) at the top-left corner, X increasing rightward and Y
// increasing downward.
//
// # Grayscale Conversion
//
// FromImage supports two channel weightings:
//   - Perceptual: ITU-R BT.601 luma, 0.299*R + 0.587*G + 0.114*B
//   - Average: (R + G + B) / 3
//
// Alpha is not taken into account.
package luminance
