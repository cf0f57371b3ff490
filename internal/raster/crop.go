package raster

import (
	"fmt"
	"math"
)

// Margins holds the fractional trim for each edge of a plane. Each value is
// a fraction of the plane's current dimension on that axis, in [0,1].
type Margins struct {
	Left, Right, Top, Bottom float64
}

// UniformMargins returns margins trimming the same fraction from all four
// edges.
func UniformMargins(m float64) Margins {
	return Margins{Left: m, Right: m, Top: m, Bottom: m}
}

func (m Margins) validate() error {
	for _, v := range []float64{m.Left, m.Right, m.Top, m.Bottom} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("margin %v out of range [0,1]", v)
		}
	}
	if m.Left+m.Right >= 1 {
		return fmt.Errorf("left+right margins %v consume the whole width", m.Left+m.Right)
	}
	if m.Top+m.Bottom >= 1 {
		return fmt.Errorf("top+bottom margins %v consume the whole height", m.Top+m.Bottom)
	}
	return nil
}

// Crop trims round(dim*margin) cells from each edge of the plane and returns
// the remaining sub-plane as a copy. Margins are fractions of the current
// dimensions, not fixed pixel counts; all-zero margins copy the plane
// unchanged. Margin pairs that would consume an entire axis are a
// configuration error.
func Crop(p *Plane, m Margins) (*Plane, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	left := int(math.Round(float64(p.cols) * m.Left))
	right := int(math.Round(float64(p.cols) * m.Right))
	top := int(math.Round(float64(p.rows) * m.Top))
	bottom := int(math.Round(float64(p.rows) * m.Bottom))

	rows := p.rows - top - bottom
	cols := p.cols - left - right
	// Rounding can eat a small axis entirely even when the margin pair sums
	// below one.
	if (rows == 0 && p.rows > 0) || (cols == 0 && p.cols > 0) {
		return nil, fmt.Errorf("margins leave no pixels on a %dx%d plane", p.rows, p.cols)
	}

	out := NewPlane(rows, cols)
	for r := 0; r < rows; r++ {
		src := (r+top)*p.cols + left
		copy(out.pix[r*cols:(r+1)*cols], p.pix[src:src+cols])
	}
	return out, nil
}
