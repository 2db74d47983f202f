package math

// CumSum returns the cumulative sum of the given values.
func CumSum(ff []float64) []float64 {
	out := make([]float64, len(ff))
	sum := 0.0
	for i, f := range ff {
		sum += f
		out[i] = sum
	}
	return out
}

// CumMean returns the running mean of the given values,
// e.g. out[i] is the average of ff[0:i+1].
func CumMean(ff []float64) []float64 {
	out := CumSum(ff)
	for i := range out {
		out[i] /= float64(i + 1)
	}
	return out
}

// LastIndexBelow returns the index of the largest element not exceeding the threshold.
// NOTE : the values must be sorted in increasing order
// If even the smallest element is above the threshold we return 0,
// so that callers always get a valid index into the series.
func LastIndexBelow(sorted []float64, threshold float64) int {
	if len(sorted) == 0 || sorted[0] > threshold {
		return 0
	}
	i := 0
	for j, v := range sorted {
		if v > threshold {
			break
		}
		i = j
	}
	return i
}
