package binning

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Partition is an equal-width partition of the range [lo,hi] into n bins.
// The edges are n+1 strictly increasing values, with the right edge of the
// last bin being inclusive.
type Partition struct {
	lo, hi float64
	n      int
	edges  []float64
}

// New creates a new partition of the given range.
func New(lo, hi float64, n int) (Partition, error) {
	if n <= 0 {
		return Partition{}, fmt.Errorf("invalid bin count: %d", n)
	}
	if hi <= lo {
		return Partition{}, fmt.Errorf("invalid range: [%f,%f]", lo, hi)
	}
	edges := make([]float64, n+1)
	floats.Span(edges, lo, hi)
	return Partition{
		lo:    lo,
		hi:    hi,
		n:     n,
		edges: edges,
	}, nil
}

// Bins returns the number of bins.
func (p Partition) Bins() int {
	return p.n
}

// Lo returns the lower end of the partition range.
func (p Partition) Lo() float64 {
	return p.lo
}

// Hi returns the upper end of the partition range.
func (p Partition) Hi() float64 {
	return p.hi
}

// Width returns the width of each bin.
func (p Partition) Width() float64 {
	return (p.hi - p.lo) / float64(p.n)
}

// Edges returns the n+1 bin edges.
func (p Partition) Edges() []float64 {
	return p.edges
}

// Midpoints returns the theoretical center of each bin.
func (p Partition) Midpoints() []float64 {
	mm := make([]float64, p.n)
	w := p.Width()
	for i := 0; i < p.n; i++ {
		mm[i] = p.lo + (float64(i)+0.5)*w
	}
	return mm
}

// Index returns the bin index for the given value.
// Values outside the partition range map to -1 and are skipped by the
// aggregations, values on the upper edge fall into the last bin.
func (p Partition) Index(v float64) int {
	if v < p.lo || v > p.hi {
		return -1
	}
	if v == p.hi {
		return p.n - 1
	}
	i := int(float64(p.n) * (v - p.lo) / (p.hi - p.lo))
	if i >= p.n {
		i = p.n - 1
	}
	return i
}
