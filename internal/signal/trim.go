package signal

import (
	"math"
	"time"

	"github.com/ibrewster/waveform-fetch/internal/model"
)

// Trim cuts or extends the trace in place so it spans exactly [from, to],
// filling samples the trace never had with NaN. The trace's own sample grid
// is preserved: the new start is the grid point nearest to from, so the
// realized span matches the request to within half a sample.
func Trim(tr *model.Trace, from, to time.Time) {
	if tr.SampleRate <= 0 || !from.Before(to) {
		return
	}

	deltaSec := 1 / tr.SampleRate
	offset := int(math.Round(from.Sub(tr.Start).Seconds() / deltaSec))
	newStart := tr.Start.Add(time.Duration(offset) * tr.Delta())

	count := int(math.Floor(to.Sub(newStart).Seconds()/deltaSec+1e-9)) + 1
	if count < 0 {
		count = 0
	}

	data := make([]float64, count)
	for i := range data {
		src := offset + i
		if src >= 0 && src < len(tr.Data) {
			data[i] = tr.Data[src]
		} else {
			data[i] = math.NaN()
		}
	}

	tr.Start = newStart
	tr.Data = data
}
