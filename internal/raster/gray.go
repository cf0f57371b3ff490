package raster

import "fmt"

// ITU-R BT.709 luma weights.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// CombineGray merges three processed colour planes into one grayscale plane
// using the BT.709 luma weights. The inputs must share a shape.
//
// No normalisation is applied: the pipeline feeds it edge-detection outputs
// whose values are already in {0, 255}, and the weights sum to one, so the
// result stays in range. The per-pixel sum is re-quantised with the
// package's saturating round-to-nearest conversion.
func CombineGray(r, g, b *Plane) (*Plane, error) {
	if !r.SameShape(g) || !r.SameShape(b) {
		return nil, fmt.Errorf("shape mismatch: R %dx%d, G %dx%d, B %dx%d",
			r.rows, r.cols, g.rows, g.cols, b.rows, b.cols)
	}
	out := NewPlane(r.rows, r.cols)
	for i := range out.pix {
		out.pix[i] = clamp8(lumaR*float64(r.pix[i]) + lumaG*float64(g.pix[i]) + lumaB*float64(b.pix[i]))
	}
	return out, nil
}
