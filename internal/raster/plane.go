package raster

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Plane is a single-channel rows x cols array of 8-bit samples.
//
// A Plane is cheap to pass by pointer and is treated as immutable by every
// transform in this package: stages allocate their output instead of writing
// into their input.
type Plane struct {
	rows, cols int
	pix        []uint8 // row-major, length rows*cols
}

// NewPlane allocates a zero-valued plane with the given dimensions.
// Negative dimensions are treated as zero.
func NewPlane(rows, cols int) *Plane {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Plane{rows: rows, cols: cols, pix: make([]uint8, rows*cols)}
}

// PlaneFromRows builds a plane from a slice of equal-length rows.
// Intended for tests and small fixtures; returns an error on ragged input.
func PlaneFromRows(rows [][]uint8) (*Plane, error) {
	if len(rows) == 0 {
		return NewPlane(0, 0), nil
	}
	cols := len(rows[0])
	p := NewPlane(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("ragged input: row %d has %d columns, want %d", r, len(row), cols)
		}
		copy(p.pix[r*cols:(r+1)*cols], row)
	}
	return p, nil
}

// Rows returns the number of rows in the plane.
func (p *Plane) Rows() int { return p.rows }

// Cols returns the number of columns in the plane.
func (p *Plane) Cols() int { return p.cols }

// At returns the sample at (row, col). Indices must be in range.
func (p *Plane) At(row, col int) uint8 { return p.pix[row*p.cols+col] }

// Set writes the sample at (row, col). Indices must be in range.
func (p *Plane) Set(row, col int, v uint8) { p.pix[row*p.cols+col] = v }

// Clone returns a deep copy of the plane.
func (p *Plane) Clone() *Plane {
	out := NewPlane(p.rows, p.cols)
	copy(out.pix, p.pix)
	return out
}

// SameShape reports whether two planes have identical dimensions.
func (p *Plane) SameShape(q *Plane) bool {
	return p.rows == q.rows && p.cols == q.cols
}

// ToRows copies the plane into a [][]uint8, one slice per row.
func (p *Plane) ToRows() [][]uint8 {
	out := make([][]uint8, p.rows)
	for r := 0; r < p.rows; r++ {
		out[r] = make([]uint8, p.cols)
		copy(out[r], p.pix[r*p.cols:(r+1)*p.cols])
	}
	return out
}

// Image is a rows x cols satellite image with three 8-bit channels (R, G, B
// at indices 0, 1, 2). It is immutable once built; the pipeline only ever
// reads from it.
type Image struct {
	rows, cols int
	pix        []uint8 // row-major, 3 interleaved samples per cell
}

// NewImage allocates a zero-valued image with the given dimensions.
func NewImage(rows, cols int) *Image {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Image{rows: rows, cols: cols, pix: make([]uint8, rows*cols*3)}
}

// Rows returns the number of rows in the image.
func (m *Image) Rows() int { return m.rows }

// Cols returns the number of columns in the image.
func (m *Image) Cols() int { return m.cols }

// At returns the sample at (row, col) in the given channel.
// All indices must be in range.
func (m *Image) At(row, col, channel int) uint8 {
	return m.pix[(row*m.cols+col)*3+channel]
}

// SetPixel writes all three channel samples at (row, col).
func (m *Image) SetPixel(row, col int, r, g, b uint8) {
	i := (row*m.cols + col) * 3
	m.pix[i] = r
	m.pix[i+1] = g
	m.pix[i+2] = b
}

// Channel extracts one colour plane from the image. The channel index must
// be 0 (red), 1 (green) or 2 (blue); anything else is a wiring bug in the
// caller and is rejected.
func (m *Image) Channel(channel int) (*Plane, error) {
	if channel < 0 || channel > 2 {
		return nil, fmt.Errorf("channel index %d out of range [0,2]", channel)
	}
	p := NewPlane(m.rows, m.cols)
	for i := 0; i < m.rows*m.cols; i++ {
		p.pix[i] = m.pix[i*3+channel]
	}
	return p, nil
}

// FromImage converts a decoded image into the pipeline's Image type.
//
// The source is normalised to NRGBA first so that every colour model decoded
// by the standard codecs ends up in the same 8-bit layout; the alpha channel
// is discarded.
func FromImage(src image.Image) *Image {
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()
	out := NewImage(b.Dy(), b.Dx())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := nrgba.PixOffset(x, y)
			out.SetPixel(y, x, nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2])
		}
	}
	return out
}

// clamp8 converts a float sample to uint8, rounding to nearest and
// saturating at the range boundaries.
func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
