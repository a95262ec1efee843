package stylize

// BayerSize is the edge length of the ordered-dither threshold matrix.
const BayerSize = 8

// bayer8 is the 8x8 ordered-dither index matrix, row-major. Each value
// 0..63 appears exactly once.
var bayer8 = [BayerSize * BayerSize]uint8{
	0, 32, 8, 40, 2, 34, 10, 42,
	48, 16, 56, 24, 50, 18, 58, 26,
	12, 44, 4, 36, 14, 46, 6, 38,
	60, 28, 52, 20, 62, 30, 54, 22,
	3, 35, 11, 43, 1, 33, 9, 41,
	51, 19, 59, 27, 49, 17, 57, 25,
	15, 47, 7, 39, 13, 45, 5, 37,
	63, 31, 55, 23, 61, 29, 53, 21,
}

// BayerMatrix returns a copy of the threshold matrix indexed [row][column].
func BayerMatrix() [BayerSize][BayerSize]uint8 {
	var m [BayerSize][BayerSize]uint8
	for y := 0; y < BayerSize; y++ {
		copy(m[y][:], bayer8[y*BayerSize:(y+1)*BayerSize])
	}
	return m
}

// BayerThreshold returns the matrix entry that applies to pixel (x, y),
// tiling the matrix over the plane: matrix[y mod 8][x mod 8].
// x and y must be non-negative.
func BayerThreshold(x, y int) uint8 {
	return bayer8[(y%BayerSize)*BayerSize+x%BayerSize]
}

// aboveBayer reports whether luminance l (0-255) exceeds matrix entry m
// (0-63) once both are normalized: l/255 > m/64, compared exactly in integers.
func aboveBayer(l, m uint8) bool {
	return int(l)*64 > int(m)*255
}
