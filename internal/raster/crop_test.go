package raster

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCrop_ZeroMargins(t *testing.T) {
	p := patternPlane(9, 13)
	out, err := Crop(p, Margins{})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if diff := cmp.Diff(p.ToRows(), out.ToRows()); diff != "" {
		t.Errorf("zero margins should be a no-op (-want +got):\n%s", diff)
	}
	out.Set(0, 0, 99)
	if p.At(0, 0) == 99 {
		t.Error("Crop should copy, not alias, the input")
	}
}

func TestCrop_Shape(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		margin     float64
		wantR      int
		wantC      int
	}{
		{"20x20 default margin", 20, 20, 0.05, 18, 18},
		{"100x50 tenth", 100, 50, 0.1, 80, 40},
		{"rounds per side", 10, 10, 0.04, 10, 10}, // round(0.4) = 0
		{"rounds up", 10, 10, 0.06, 8, 8},         // round(0.6) = 1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Crop(constantPlane(tt.rows, tt.cols, 1), UniformMargins(tt.margin))
			if err != nil {
				t.Fatalf("Crop failed: %v", err)
			}
			if out.Rows() != tt.wantR || out.Cols() != tt.wantC {
				t.Errorf("shape: got %dx%d, want %dx%d", out.Rows(), out.Cols(), tt.wantR, tt.wantC)
			}
		})
	}
}

func TestCrop_Content(t *testing.T) {
	p, err := PlaneFromRows([][]uint8{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	if err != nil {
		t.Fatal(err)
	}

	// 0.25 of 4 trims exactly one cell from each side.
	out, err := Crop(p, UniformMargins(0.25))
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	want := [][]uint8{
		{6, 7},
		{10, 11},
	}
	if diff := cmp.Diff(want, out.ToRows()); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestCrop_AsymmetricMargins(t *testing.T) {
	p := patternPlane(10, 10)
	out, err := Crop(p, Margins{Left: 0.2, Top: 0.1})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if out.Rows() != 9 || out.Cols() != 8 {
		t.Fatalf("shape: got %dx%d, want 9x8", out.Rows(), out.Cols())
	}
	if out.At(0, 0) != p.At(1, 2) {
		t.Errorf("origin: got %d, want %d", out.At(0, 0), p.At(1, 2))
	}
}

func TestCrop_InvalidMargins(t *testing.T) {
	p := constantPlane(10, 10, 0)

	tests := []struct {
		name string
		m    Margins
	}{
		{"negative", Margins{Left: -0.1}},
		{"above one", Margins{Top: 1.5}},
		{"width consumed", Margins{Left: 0.5, Right: 0.5}},
		{"height consumed", Margins{Top: 0.6, Bottom: 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(p, tt.m); err == nil {
				t.Error("Crop should reject these margins")
			}
		})
	}
}

func TestCrop_RoundingConsumesAxis(t *testing.T) {
	// 0.45 + 0.45 < 1 passes validation, but each side rounds up to a full
	// cell of a 2-row plane.
	p := constantPlane(2, 10, 1)
	if _, err := Crop(p, Margins{Top: 0.45, Bottom: 0.45}); err == nil {
		t.Error("Crop should reject margins whose rounding leaves no rows")
	}
}
