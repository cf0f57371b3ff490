package raster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Compress performs a low-rank approximation of the plane via singular value
// decomposition, retaining floor(pc * n) of the n singular values and zeroing
// the rest before reconstruction.
//
// Retaining a small fraction keeps only the dominant spatial structure
// (coastline-scale features) and discards high-frequency noise. pc must lie
// in [0,1]: 0 yields an all-zero plane, 1 reconstructs the input exactly
// after re-quantisation.
//
// Reconstruction happens in floating point; the result is re-quantised with
// the package's saturating round-to-nearest conversion.
func Compress(p *Plane, pc float64) (*Plane, error) {
	if math.IsNaN(pc) || pc < 0 || pc > 1 {
		return nil, fmt.Errorf("retention fraction %v out of range [0,1]", pc)
	}
	if p.rows == 0 || p.cols == 0 {
		return p.Clone(), nil
	}

	m := mat.NewDense(p.rows, p.cols, nil)
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			m.Set(r, c, float64(p.At(r, c)))
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		return nil, fmt.Errorf("svd failed to converge for %dx%d plane", p.rows, p.cols)
	}

	values := svd.Values(nil)
	keep := int(math.Floor(pc * float64(len(values))))

	out := NewPlane(p.rows, p.cols)
	if keep == 0 {
		return out, nil
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Reconstruct U_k * S_k * V_kᵀ using only the retained columns.
	var scaled, approx mat.Dense
	scaled.Mul(u.Slice(0, p.rows, 0, keep), mat.NewDiagDense(keep, values[:keep]))
	approx.Mul(&scaled, v.Slice(0, p.cols, 0, keep).T())

	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			out.Set(r, c, clamp8(approx.At(r, c)))
		}
	}
	return out, nil
}
