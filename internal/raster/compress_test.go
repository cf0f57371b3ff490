package raster

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// patternPlane builds a deterministic non-constant plane for round-trip tests.
func patternPlane(rows, cols int) *Plane {
	p := NewPlane(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p.Set(r, c, uint8((r*31+c*17)%251))
		}
	}
	return p
}

func TestCompress_InvalidRetention(t *testing.T) {
	p := constantPlane(4, 4, 10)
	for _, pc := range []float64{-0.1, 1.5, math.NaN()} {
		if _, err := Compress(p, pc); err == nil {
			t.Errorf("Compress with pc=%v should fail", pc)
		}
	}
}

func TestCompress_ZeroRetention(t *testing.T) {
	out, err := Compress(patternPlane(6, 9), 0)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if diff := cmp.Diff(NewPlane(6, 9).ToRows(), out.ToRows()); diff != "" {
		t.Errorf("pc=0 should zero the plane (-want +got):\n%s", diff)
	}
}

func TestCompress_FullRetention(t *testing.T) {
	// Full rank reconstructs exactly: the floating point error is far below
	// the half-unit absorbed by round-to-nearest re-quantisation.
	for _, dims := range [][2]int{{5, 5}, {4, 9}, {12, 6}} {
		p := patternPlane(dims[0], dims[1])
		out, err := Compress(p, 1)
		if err != nil {
			t.Fatalf("Compress(%dx%d) failed: %v", dims[0], dims[1], err)
		}
		if diff := cmp.Diff(p.ToRows(), out.ToRows()); diff != "" {
			t.Errorf("pc=1 round trip on %dx%d (-want +got):\n%s", dims[0], dims[1], diff)
		}
	}
}

func TestCompress_RankOneInput(t *testing.T) {
	// Rows are scalar multiples of each other, so the matrix has rank one and
	// any truncation keeping at least one singular value reconstructs it.
	p, err := PlaneFromRows([][]uint8{
		{10, 10, 10, 10},
		{20, 20, 20, 20},
		{30, 30, 30, 30},
		{40, 40, 40, 40},
	})
	if err != nil {
		t.Fatal(err)
	}

	out, err := Compress(p, 0.5) // keeps floor(0.5*4) = 2 of 4 values
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if diff := cmp.Diff(p.ToRows(), out.ToRows()); diff != "" {
		t.Errorf("rank-1 plane should survive truncation (-want +got):\n%s", diff)
	}
}

func TestCompress_RetentionFloor(t *testing.T) {
	// floor(0.2 * 4) = 0 kept values behaves exactly like pc=0.
	out, err := Compress(patternPlane(4, 4), 0.2)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if diff := cmp.Diff(NewPlane(4, 4).ToRows(), out.ToRows()); diff != "" {
		t.Errorf("sub-unit retention should zero the plane (-want +got):\n%s", diff)
	}
}

func TestCompress_PreservesShape(t *testing.T) {
	p := patternPlane(7, 11)
	out, err := Compress(p, 0.4)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if out.Rows() != 7 || out.Cols() != 11 {
		t.Errorf("shape: got %dx%d, want 7x11", out.Rows(), out.Cols())
	}
}
