package raster

import "testing"

func TestCombineGray(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"all black", 0, 0, 0, 0},
		{"all white", 255, 255, 255, 255}, // weights sum to 1.0
		{"red only", 100, 0, 0, 21},       // round(21.26)
		{"green only", 0, 100, 0, 72},     // round(71.52)
		{"blue only", 0, 0, 100, 7},       // round(7.22)
		{"binary mix", 255, 0, 255, 73},   // round(0.2126*255 + 0.0722*255)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := CombineGray(
				constantPlane(4, 4, tt.r),
				constantPlane(4, 4, tt.g),
				constantPlane(4, 4, tt.b),
			)
			if err != nil {
				t.Fatalf("CombineGray failed: %v", err)
			}
			if got := out.At(2, 2); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCombineGray_LinearInRed(t *testing.T) {
	// Against zero green/blue planes, the output is exactly the rounded
	// red contribution, so bumping R by delta moves every pixel by
	// round(0.2126*delta).
	zero := constantPlane(3, 3, 0)
	for _, delta := range []uint8{10, 50, 100, 200, 255} {
		out, err := CombineGray(constantPlane(3, 3, delta), zero, zero)
		if err != nil {
			t.Fatalf("CombineGray failed: %v", err)
		}
		want := clamp8(0.2126 * float64(delta))
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if out.At(r, c) != want {
					t.Fatalf("delta %d at (%d,%d): got %d, want %d", delta, r, c, out.At(r, c), want)
				}
			}
		}
	}
}

func TestCombineGray_ShapeMismatch(t *testing.T) {
	a := constantPlane(4, 4, 0)
	b := constantPlane(4, 5, 0)
	if _, err := CombineGray(a, b, a); err == nil {
		t.Error("CombineGray should fail on mismatched shapes")
	}
	if _, err := CombineGray(a, a, b); err == nil {
		t.Error("CombineGray should fail on mismatched shapes")
	}
}
