package binning

import (
	"math"

	"github.com/drakos74/calib/internal/buffer"
	coinmath "github.com/drakos74/calib/internal/math"
)

// Histogram counts the values falling into each bin.
func (p Partition) Histogram(values []float64) []int {
	counts := make([]int, p.n)
	for _, v := range values {
		if i := p.Index(v); i >= 0 {
			counts[i]++
		}
	}
	return counts
}

// Fractions returns the histogram counts normalized by the total count.
// With no values in range all fractions are NaN.
func (p Partition) Fractions(values []float64) []float64 {
	counts := p.Histogram(values)
	total := 0
	for _, c := range counts {
		total += c
	}
	ff := make([]float64, p.n)
	for i, c := range counts {
		if total == 0 {
			ff[i] = math.NaN()
			continue
		}
		ff[i] = float64(c) / float64(total)
	}
	return ff
}

// Cumulative returns the cumulative fraction of values up to and including each bin.
// The sequence is non-decreasing and converges to 1 for a non-empty value set.
func (p Partition) Cumulative(values []float64) []float64 {
	cum := coinmath.CumSum(coinmath.ToFloat(p.Histogram(values)))
	total := cum[len(cum)-1]
	for i := range cum {
		cum[i] /= total
	}
	return cum
}

// BinnedMean computes the per-bin mean of the target series,
// grouping each target by the bin its value falls into.
// Empty bins have a NaN mean, the counts allow callers to substitute.
func (p Partition) BinnedMean(values, targets []float64) ([]float64, []int) {
	bins := make([]*buffer.Stats, p.n)
	for i := range bins {
		bins[i] = buffer.NewStats()
	}
	for j, v := range values {
		if i := p.Index(v); i >= 0 {
			bins[i].Push(targets[j])
		}
	}
	means := make([]float64, p.n)
	counts := make([]int, p.n)
	for i, b := range bins {
		means[i] = b.Avg()
		counts[i] = b.Count()
	}
	return means, counts
}
