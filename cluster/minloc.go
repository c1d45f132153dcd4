package cluster

// argminPrefix returns the index and value of the minimum of values[0:k]
// (spec section 4.8). Ties are broken by lowest index. Callers guarantee no
// NaN is present (spec section 4.8: "robust to NaN only insofar as the
// caller guarantees no NaN").
func argminPrefix(values []float64, k int) (minIndex int, minValue float64) {
	minValue = values[0]
	for i := 1; i < k; i++ {
		if values[i] < minValue {
			minValue = values[i]
			minIndex = i
		}
	}
	return minIndex, minValue
}
