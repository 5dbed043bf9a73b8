package signal

import "gonum.org/v1/gonum/stat"

// Detrend removes the least-squares linear trend from data in place.
func Detrend(data []float64) {
	if len(data) < 2 {
		return
	}

	xs := make([]float64, len(data))
	for i := range xs {
		xs[i] = float64(i)
	}

	alpha, beta := stat.LinearRegression(xs, data, nil, false)
	for i := range data {
		data[i] -= alpha + beta*float64(i)
	}
}
