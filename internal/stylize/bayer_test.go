package stylize

import "testing"

func TestBayerMatrix_Permutation(t *testing.T) {
	m := BayerMatrix()
	var seen [64]bool
	for y := 0; y < BayerSize; y++ {
		for x := 0; x < BayerSize; x++ {
			v := m[y][x]
			if v > 63 {
				t.Fatalf("entry [%d][%d] = %d out of range", y, x, v)
			}
			if seen[v] {
				t.Fatalf("entry %d appears twice", v)
			}
			seen[v] = true
		}
	}
}

func TestBayerMatrix_Copy(t *testing.T) {
	m := BayerMatrix()
	m[0][0] = 63
	if BayerThreshold(0, 0) != 0 {
		t.Error("modifying the returned matrix changed the table")
	}
}

func TestBayerThreshold_Tiling(t *testing.T) {
	m := BayerMatrix()
	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 0},
		{1, 0, 32},
		{0, 1, 48},
		{7, 7, 21},
		{8, 0, 0},
		{9, 8, 32},
		{15, 15, 21},
		{21, 10, m[2][5]},
	}

	for _, tt := range tests {
		if got := BayerThreshold(tt.x, tt.y); got != tt.want {
			t.Errorf("BayerThreshold(%d,%d): got %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAboveBayer(t *testing.T) {
	tests := []struct {
		l, m uint8
		want bool
	}{
		{0, 0, false}, // 0 > 0 is false
		{1, 0, true},  // any light beats the zero entry
		{255, 63, true},
		{200, 50, true},  // 0.784 > 0.781
		{200, 51, false}, // 0.784 < 0.797
		{128, 32, true},  // 0.502 > 0.5
		{127, 32, false}, // 0.498 < 0.5
	}

	for _, tt := range tests {
		if got := aboveBayer(tt.l, tt.m); got != tt.want {
			t.Errorf("aboveBayer(%d,%d): got %v, want %v", tt.l, tt.m, got, tt.want)
		}
	}
}
