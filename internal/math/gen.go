package math

// Series generates an arithmetic series starting at start with the given step.
func Series(start, step float64, limit int) []float64 {
	xx := make([]float64, 0)
	for i := 0; i < limit; i++ {
		xx = append(xx, start+step*float64(i))
	}
	return xx
}
