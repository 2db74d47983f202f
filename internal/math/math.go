package math

import (
	"math"
	"strconv"
)

// Format formats a float based on the given precision
// TODO : format based on the value
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// ArgMax returns the index of the largest element of the row.
// NOTE : ties resolve to the first occurrence
func ArgMax(row []float64) int {
	j := 0
	for i, v := range row {
		if v > row[j] {
			j = i
		}
	}
	return j
}

// Max returns the largest element of the row.
func Max(row []float64) float64 {
	m := math.Inf(-1)
	for _, v := range row {
		if v > m {
			m = v
		}
	}
	return m
}

// Mean returns the average of the given values.
// An empty set has no mean, so we return NaN.
func Mean(ff []float64) float64 {
	if len(ff) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, f := range ff {
		sum += f
	}
	return sum / float64(len(ff))
}

func ToInt(ff []float64) []int {
	ii := make([]int, len(ff))
	for i, f := range ff {
		ii[i] = int(f)
	}
	return ii
}

func ToFloat(ii []int) []float64 {
	ff := make([]float64, len(ii))
	for f, i := range ii {
		ff[f] = float64(i)
	}
	return ff
}
