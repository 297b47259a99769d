package market

import "math"

// AbsoluteDelta returns the difference between the current value and the
// earliest point of the history. ok is false when there is no usable
// baseline: empty history, a non-numeric current value, or an earliest
// price of zero (zero is treated as missing data, see DESIGN.md).
func AbsoluteDelta(current float64, history ValueHistory) (float64, bool) {
	if math.IsNaN(current) {
		return 0, false
	}
	earliest, ok := history.Earliest()
	if !ok || earliest.Price == 0 {
		return 0, false
	}
	return current - earliest.Price, true
}

// PercentDelta returns the delta as a percentage of the earliest price,
// with the same guards as AbsoluteDelta. A non-finite result collapses
// to 0.
func PercentDelta(current float64, history ValueHistory) (float64, bool) {
	d, ok := AbsoluteDelta(current, history)
	if !ok {
		return 0, false
	}
	earliest, _ := history.Earliest()
	pct := d / math.Abs(earliest.Price) * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		pct = 0
	}
	return pct, true
}
