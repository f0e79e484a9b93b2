package weekly

// TriangularSmooth applies a centered triangular-kernel moving average of
// the given window width. Weights are window/2 - |offset|, normalized to
// sum 1. Positions within half a window of either edge get nil: the kernel
// does not fit there and fabricating values would distort the series ends.
func TriangularSmooth(values []float64, window int) []*float64 {
	out := make([]*float64, len(values))
	half := window / 2
	if half < 1 {
		return out
	}

	var weightSum float64
	for offset := -(half - 1); offset <= half-1; offset++ {
		weightSum += float64(half - abs(offset))
	}

	for i := range values {
		if i < half-1 || i+half-1 >= len(values) {
			continue
		}
		var sum float64
		for offset := -(half - 1); offset <= half-1; offset++ {
			sum += values[i+offset] * float64(half-abs(offset))
		}
		v := sum / weightSum
		out[i] = &v
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
