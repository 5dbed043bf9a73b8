package signal

import (
	"math"
	"testing"
	"time"

	"github.com/ibrewster/waveform-fetch/internal/model"
)

func baseTime() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestNormalizeInt(t *testing.T) {
	stream := model.Stream{
		{Data: []float64{1.7, -2.3, 0.5}},
		{Data: []float64{100.99}},
	}
	NormalizeInt(stream)

	want := [][]float64{{1, -2, 0}, {100}}
	for i, tr := range stream {
		for j, v := range tr.Data {
			if v != want[i][j] {
				t.Errorf("trace %d sample %d = %g, want %g", i, j, v, want[i][j])
			}
		}
	}
}

func TestScaleAndCenter(t *testing.T) {
	t.Run("scales and zero-centers", func(t *testing.T) {
		tr := &model.Trace{Data: []float64{200, 400, 600}}
		ScaleAndCenter(tr, 2)

		// 100, 200, 300 scaled; mean 200 removed.
		want := []float64{-100, 0, 100}
		for i, v := range tr.Data {
			if math.Abs(v-want[i]) > 1e-12 {
				t.Errorf("sample %d = %g, want %g", i, v, want[i])
			}
		}
	})

	t.Run("ignores NaN padding", func(t *testing.T) {
		tr := &model.Trace{Data: []float64{math.NaN(), 200, 400, math.NaN()}}
		ScaleAndCenter(tr, 2)

		if !math.IsNaN(tr.Data[0]) || !math.IsNaN(tr.Data[3]) {
			t.Error("NaN padding should be preserved")
		}
		if math.Abs(tr.Data[1]+50) > 1e-12 || math.Abs(tr.Data[2]-50) > 1e-12 {
			t.Errorf("centered samples = (%g, %g), want (-50, 50)", tr.Data[1], tr.Data[2])
		}
	})

	t.Run("zero scale is a no-op", func(t *testing.T) {
		tr := &model.Trace{Data: []float64{1, 2, 3}}
		ScaleAndCenter(tr, 0)
		if tr.Data[0] != 1 || tr.Data[2] != 3 {
			t.Error("zero scale should leave data untouched")
		}
	})
}

func TestMerge(t *testing.T) {
	mkTrace := func(startOffset time.Duration, data ...float64) *model.Trace {
		return &model.Trace{
			Station:    "XYZ",
			Channel:    "EHZ",
			Start:      baseTime().Add(startOffset),
			SampleRate: 1,
			Data:       data,
		}
	}

	t.Run("fills gaps with latest value", func(t *testing.T) {
		stream := model.Stream{
			mkTrace(0, 1, 2, 3),
			mkTrace(6*time.Second, 7, 8),
		}
		merged := Merge(stream)

		if merged.Count() != 1 {
			t.Fatalf("got %d traces, want 1", merged.Count())
		}
		want := []float64{1, 2, 3, 3, 3, 3, 7, 8}
		got := merged.First().Data
		if len(got) != len(want) {
			t.Fatalf("merged length = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("sample %d = %g, want %g", i, got[i], want[i])
			}
		}
	})

	t.Run("later segment wins on overlap", func(t *testing.T) {
		stream := model.Stream{
			mkTrace(0, 1, 2, 3, 4),
			mkTrace(2*time.Second, 30, 40, 50),
		}
		merged := Merge(stream)

		want := []float64{1, 2, 30, 40, 50}
		got := merged.First().Data
		if len(got) != len(want) {
			t.Fatalf("merged length = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("sample %d = %g, want %g", i, got[i], want[i])
			}
		}
	})

	t.Run("distinct channels stay separate", func(t *testing.T) {
		a := mkTrace(0, 1, 2)
		b := mkTrace(0, 3, 4)
		b.Channel = "EHN"
		merged := Merge(model.Stream{a, b})
		if merged.Count() != 2 {
			t.Fatalf("got %d traces, want 2", merged.Count())
		}
	})

	t.Run("mismatched sample rates left unmerged", func(t *testing.T) {
		a := mkTrace(0, 1, 2)
		b := mkTrace(10*time.Second, 3, 4)
		b.SampleRate = 2
		merged := Merge(model.Stream{a, b})
		if merged.Count() != 2 {
			t.Fatalf("got %d traces, want 2", merged.Count())
		}
	})

	t.Run("single trace passes through", func(t *testing.T) {
		a := mkTrace(0, 1, 2)
		merged := Merge(model.Stream{a})
		if merged.Count() != 1 || merged.First() != a {
			t.Error("single-trace stream should pass through unchanged")
		}
	})
}

func TestDetrend(t *testing.T) {
	t.Run("removes linear ramp", func(t *testing.T) {
		data := make([]float64, 100)
		for i := range data {
			data[i] = 5 + 0.25*float64(i)
		}
		Detrend(data)
		for i, v := range data {
			if math.Abs(v) > 1e-9 {
				t.Fatalf("sample %d = %g after detrend, want ~0", i, v)
			}
		}
	})

	t.Run("preserves residual around trend", func(t *testing.T) {
		data := make([]float64, 200)
		for i := range data {
			data[i] = 10 - 0.5*float64(i) + math.Sin(float64(i)/3)
		}
		Detrend(data)
		var sum float64
		for _, v := range data {
			sum += v
		}
		if mean := sum / float64(len(data)); math.Abs(mean) > 0.05 {
			t.Errorf("mean after detrend = %g, want ~0", mean)
		}
	})
}

// rms of samples, skipping a settle margin at both ends.
func rms(data []float64, margin int) float64 {
	var sum float64
	n := 0
	for i := margin; i < len(data)-margin; i++ {
		sum += data[i] * data[i]
		n++
	}
	return math.Sqrt(sum / float64(n))
}

func TestBandpass(t *testing.T) {
	const rate = 100.0
	bp, err := NewBandpass(0.5, 15, rate, 2)
	if err != nil {
		t.Fatalf("NewBandpass failed: %v", err)
	}

	n := 4096
	sine := func(freq float64) []float64 {
		data := make([]float64, n)
		for i := range data {
			data[i] = math.Sin(2 * math.Pi * freq * float64(i) / rate)
		}
		return data
	}

	t.Run("passband tone preserved", func(t *testing.T) {
		out := bp.ApplyZeroPhase(sine(5))
		if got := rms(out, 512); got < 0.5 {
			t.Errorf("passband rms = %g, want > 0.5", got)
		}
	})

	t.Run("stopband tone attenuated", func(t *testing.T) {
		out := bp.ApplyZeroPhase(sine(40))
		if got := rms(out, 512); got > 0.05 {
			t.Errorf("stopband rms = %g, want < 0.05", got)
		}
	})

	t.Run("DC rejected", func(t *testing.T) {
		data := make([]float64, n)
		for i := range data {
			data[i] = 3.5
		}
		out := bp.ApplyZeroPhase(data)
		if got := rms(out, 512); got > 0.05 {
			t.Errorf("DC rms = %g, want < 0.05", got)
		}
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		if _, err := NewBandpass(15, 0.5, rate, 2); err == nil {
			t.Error("inverted corners should fail")
		}
		if _, err := NewBandpass(0.5, 60, rate, 2); err == nil {
			t.Error("corner above Nyquist should fail")
		}
		if _, err := NewBandpass(0.5, 15, rate, 0); err == nil {
			t.Error("zero order should fail")
		}
	})
}

func TestTrim(t *testing.T) {
	mk := func() *model.Trace {
		return &model.Trace{
			Start:      baseTime(),
			SampleRate: 1,
			Data:       []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		}
	}

	t.Run("cuts interior window", func(t *testing.T) {
		tr := mk()
		Trim(tr, baseTime().Add(2*time.Second), baseTime().Add(5*time.Second))

		if !tr.Start.Equal(baseTime().Add(2 * time.Second)) {
			t.Errorf("Start = %v, want %v", tr.Start, baseTime().Add(2*time.Second))
		}
		want := []float64{2, 3, 4, 5}
		if len(tr.Data) != len(want) {
			t.Fatalf("length = %d, want %d", len(tr.Data), len(want))
		}
		for i := range want {
			if tr.Data[i] != want[i] {
				t.Errorf("sample %d = %g, want %g", i, tr.Data[i], want[i])
			}
		}
	})

	t.Run("NaN-pads short edges", func(t *testing.T) {
		tr := mk()
		Trim(tr, baseTime().Add(-3*time.Second), baseTime().Add(12*time.Second))

		if len(tr.Data) != 16 {
			t.Fatalf("length = %d, want 16", len(tr.Data))
		}
		for i := 0; i < 3; i++ {
			if !math.IsNaN(tr.Data[i]) {
				t.Errorf("leading sample %d should be NaN", i)
			}
		}
		if tr.Data[3] != 0 || tr.Data[12] != 9 {
			t.Errorf("data misaligned: got %g at 3 and %g at 12", tr.Data[3], tr.Data[12])
		}
		for i := 13; i < 16; i++ {
			if !math.IsNaN(tr.Data[i]) {
				t.Errorf("trailing sample %d should be NaN", i)
			}
		}
		if !tr.Start.Equal(baseTime().Add(-3 * time.Second)) {
			t.Errorf("Start = %v, want %v", tr.Start, baseTime().Add(-3*time.Second))
		}
	})

	t.Run("snaps to the trace sample grid", func(t *testing.T) {
		tr := mk()
		// Trace actually starts 300ms after the requested window origin.
		tr.Start = baseTime().Add(300 * time.Millisecond)
		Trim(tr, baseTime(), baseTime().Add(5*time.Second))

		// Nearest grid point to the request is the trace's own start.
		if !tr.Start.Equal(baseTime().Add(300 * time.Millisecond)) {
			t.Errorf("Start = %v, want grid-aligned %v", tr.Start, baseTime().Add(300*time.Millisecond))
		}
		if len(tr.Data) != 5 {
			t.Errorf("length = %d, want 5", len(tr.Data))
		}
	})
}
