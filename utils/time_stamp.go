package utils

// RowTimestamp returns the synthetic timestamp of row i on a fixed step grid:
//
//	t(i) = i * step
func RowTimestamp(row int, step float64) float64 {
	return float64(row) * step
}

// IntervalBounds returns the [t0, t1] span of interval i on a step grid.
func IntervalBounds(i int, dt float64) (t0, t1 float64) {
	t0 = float64(i) * dt
	return t0, t0 + dt
}

// RowTimestamps returns the first n timestamps of a step grid.
func RowTimestamps(n int, step float64) []float64 {
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = RowTimestamp(i, step)
	}
	return ts
}
