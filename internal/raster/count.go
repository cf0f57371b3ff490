package raster

import (
	"runtime"
	"sync"
)

// Count returns the number of pixels strictly greater than threshold,
// partitioning rows across one worker per CPU.
//
// The threshold is an int so callers can count every pixel by passing a
// value below zero.
func Count(p *Plane, threshold int) int {
	return CountWorkers(p, threshold, runtime.NumCPU())
}

// CountWorkers is Count with an explicit worker count.
//
// Rows are split into contiguous ranges, one per worker; each worker sums
// into its own slot of the partials slice, so no locking is needed, and the
// final reduction runs after the join. The sum is associative and
// commutative, so the result does not depend on how rows are partitioned.
func CountWorkers(p *Plane, threshold, workers int) int {
	if p.rows == 0 || p.cols == 0 {
		return 0
	}
	if workers < 1 {
		workers = 1
	}
	if workers > p.rows {
		workers = p.rows
	}

	chunk := (p.rows + workers - 1) / workers
	partials := make([]int, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > p.rows {
			hi = p.rows
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			n := 0
			for r := lo; r < hi; r++ {
				row := p.pix[r*p.cols : (r+1)*p.cols]
				for _, v := range row {
					if int(v) > threshold {
						n++
					}
				}
			}
			partials[w] = n
		}(w, lo, hi)
	}
	wg.Wait()

	total := 0
	for _, n := range partials {
		total += n
	}
	return total
}
