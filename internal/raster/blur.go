package raster

// Blur returns a new plane where each interior cell is the truncated average
// of its four direct neighbours (left, right, above, below).
//
// Border cells have no full neighbour set and are copied from the input
// unchanged. That keeps a constant-valued plane a fixed point of the filter:
// interior cells average four identical neighbours and border cells pass
// through.
func Blur(p *Plane) *Plane {
	out := p.Clone()
	for r := 1; r < p.rows-1; r++ {
		for c := 1; c < p.cols-1; c++ {
			sum := int(p.At(r, c-1)) + int(p.At(r, c+1)) + int(p.At(r-1, c)) + int(p.At(r+1, c))
			out.Set(r, c, uint8(sum/4))
		}
	}
	return out
}

// BlurN applies Blur the given number of times. Repeated passes widen the
// effective smoothing footprint and suppress fine noise ahead of rank
// compression; the pipeline default is four. Non-positive counts return a
// copy of the input.
func BlurN(p *Plane, passes int) *Plane {
	if passes <= 0 {
		return p.Clone()
	}
	out := p
	for i := 0; i < passes; i++ {
		out = Blur(out)
	}
	return out
}
