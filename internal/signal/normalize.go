package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ibrewster/waveform-fetch/internal/model"
)

// NormalizeInt truncates every sample in the stream toward zero, so that all
// traces share integer-valued samples. Merging cannot combine mismatched
// sample types, and raw winston counts are integral anyway.
func NormalizeInt(stream model.Stream) {
	for _, tr := range stream {
		for i, v := range tr.Data {
			tr.Data[i] = math.Trunc(v)
		}
	}
}

// ScaleAndCenter divides every sample by the station scale factor and then
// subtracts the trace mean, zero-centering the signal. NaN padding is
// ignored when computing the mean and left in place.
func ScaleAndCenter(tr *model.Trace, scale float64) {
	if scale == 0 {
		return
	}
	floats.Scale(1/scale, tr.Data)

	valid := make([]float64, 0, len(tr.Data))
	for _, v := range tr.Data {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return
	}
	floats.AddConst(-stat.Mean(valid, nil), tr.Data)
}
