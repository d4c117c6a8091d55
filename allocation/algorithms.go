// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import "math"

const (
	// Total is the value a complete set sums to.
	Total = 100.0

	// Epsilon is the tolerance used by IsComplete. Proportional
	// redistribution accumulates float error, so exact equality is too strict.
	Epsilon = 1e-6
)

// ClampExcess sets values[i] to newValue and, if the total then exceeds 100,
// shrinks every other value by its share of the excess:
//
//	v_j -= excess * v_j / othersTotal
//
// Values never drop below 0. This is a single pass; if the result is still
// over 100 it is returned as-is. The input slice is not modified.
func ClampExcess(values []float64, i int, newValue float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	out[i] = newValue

	total := sum(out)
	if total <= Total {
		return out
	}

	excess := total - Total
	othersTotal := total - newValue
	if othersTotal <= 0 {
		return out
	}

	for j := range out {
		if j == i {
			continue
		}
		out[j] = math.Max(0, out[j]-excess*(out[j]/othersTotal))
	}

	return out
}

// Absorb spreads a removed value over the remaining values in proportion to
// their current share:
//
//	v_j += removed * v_j / R
//
// where R is the sum of the remaining values. When R is 0 (empty set or all
// zeros) the removed value is dropped. Values are capped at 100. The input
// slice is not modified.
func Absorb(values []float64, removed float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	remaining := sum(out)
	if remaining <= 0 || removed <= 0 {
		return out
	}

	for j := range out {
		out[j] = math.Min(Total, out[j]+removed*(out[j]/remaining))
	}

	return out
}

// Scale multiplies every value by Total/sum so the set sums to 100.
// Zero-sum input is returned unchanged.
func Scale(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	total := sum(out)
	if total <= 0 {
		return out
	}

	factor := Total / total
	for j := range out {
		out[j] *= factor
	}

	return out
}

// ClampPercent bounds v to [0, 100]. NaN becomes 0.
func ClampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(Total, v))
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
