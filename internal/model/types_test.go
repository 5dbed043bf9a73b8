package model

import (
	"testing"
	"time"
)

func TestAvailabilityOverlaps(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	avail := Availability{
		Station: "XYZ",
		Channel: "EHZ",
		From:    base.Add(-time.Hour),
		To:      base.Add(time.Hour),
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"window inside span", base, base.Add(time.Minute), true},
		{"window covers span", base.Add(-2 * time.Hour), base.Add(2 * time.Hour), true},
		{"window before span", base.Add(-3 * time.Hour), base.Add(-2 * time.Hour), false},
		{"window after span", base.Add(2 * time.Hour), base.Add(3 * time.Hour), false},
		{"end touches span start", base.Add(-2 * time.Hour), base.Add(-time.Hour), true},
		{"start touches span end", base.Add(time.Hour), base.Add(2 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := avail.Overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestTraceTimes(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tr := &Trace{
		Station:    "XYZ",
		Channel:    "EHZ",
		Start:      start,
		SampleRate: 100,
		Data:       make([]float64, 500),
	}

	if got := tr.Delta(); got != 10*time.Millisecond {
		t.Errorf("Delta() = %v, want %v", got, 10*time.Millisecond)
	}
	if got := tr.End(); !got.Equal(start.Add(4990 * time.Millisecond)) {
		t.Errorf("End() = %v, want %v", got, start.Add(4990*time.Millisecond))
	}
	if got := tr.TimeAt(100); !got.Equal(start.Add(time.Second)) {
		t.Errorf("TimeAt(100) = %v, want %v", got, start.Add(time.Second))
	}
	if got := tr.Count(); got != 500 {
		t.Errorf("Count() = %d, want 500", got)
	}
}

func TestStreamFirst(t *testing.T) {
	t.Run("empty stream", func(t *testing.T) {
		var s Stream
		if s.First() != nil {
			t.Error("First() on empty stream should be nil")
		}
		if s.Count() != 0 {
			t.Errorf("Count() = %d, want 0", s.Count())
		}
	})

	t.Run("returns primary trace", func(t *testing.T) {
		a := &Trace{Station: "A"}
		b := &Trace{Station: "B"}
		s := Stream{a, b}
		if s.First() != a {
			t.Error("First() should return the first trace")
		}
	})
}

func TestTimeUnitValid(t *testing.T) {
	if !Milliseconds.Valid() || !Seconds.Valid() {
		t.Error("built-in units should be valid")
	}
	if TimeUnit("us").Valid() {
		t.Error("unknown unit should be invalid")
	}
}
