// Package trend implements the trend-detection core: keyword extraction,
// week-over-week growth scoring, sentiment swings and multi-source
// corroboration. Everything here is pure, in-memory computation over
// already-fetched event sets; storage and scheduling live elsewhere.
package trend

// CalculateTrend returns the percentage change from previous to current.
// A previous count of zero is special-cased: a new appearance is reported
// as a flat 100% rather than an undefined division, and zero-to-zero is 0.
// Callers rely on never seeing Inf or NaN from this function.
func CalculateTrend(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
