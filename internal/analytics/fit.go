package analytics

import "gonum.org/v1/gonum/stat"

// TrendLine fits y = alpha + beta*x by ordinary least squares. ok is
// false when fewer than two points are given or all x values coincide,
// in which case no line can be drawn.
func TrendLine(xs, ys []float64) (alpha, beta float64, ok bool) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0, 0, false
	}
	allEqual := true
	for _, x := range xs[1:] {
		if x != xs[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return 0, 0, false
	}
	alpha, beta = stat.LinearRegression(xs, ys, nil, false)
	return alpha, beta, true
}

// Correlation returns the Pearson correlation coefficient of two paired
// samples, or 0 when fewer than two pairs exist.
func Correlation(xs, ys []float64) float64 {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0
	}
	return stat.Correlation(xs, ys, nil)
}
