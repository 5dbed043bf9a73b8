package model

import "time"

// ChannelKey identifies a (station, channel) pair for availability lookups.
type ChannelKey struct {
	Station string
	Channel string
}

// Availability describes the time span for which a channel has data.
type Availability struct {
	Network  string
	Station  string
	Location string
	Channel  string
	From     time.Time // Earliest available sample
	To       time.Time // Latest available sample
}

// Key returns the lookup key for this record.
func (a Availability) Key() ChannelKey {
	return ChannelKey{Station: a.Station, Channel: a.Channel}
}

// Overlaps reports whether the availability span intersects [start, end].
func (a Availability) Overlaps(start, end time.Time) bool {
	return !a.To.Before(start) && !a.From.After(end)
}

// AvailabilityTable is a precomputed availability lookup, keyed by
// (station, channel). Callers may supply one instead of a live query.
type AvailabilityTable map[ChannelKey]Availability

// Trace holds one contiguous segment of waveform samples.
type Trace struct {
	Network  string
	Station  string
	Location string
	Channel  string

	Start      time.Time // Time of the first sample
	SampleRate float64   // Samples per second, > 0
	Data       []float64 // Sample values; NaN marks missing data
}

// Count returns the number of samples in the trace.
func (t *Trace) Count() int {
	return len(t.Data)
}

// Delta returns the time between consecutive samples.
func (t *Trace) Delta() time.Duration {
	if t.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / t.SampleRate)
}

// End returns the time of the last sample.
func (t *Trace) End() time.Time {
	if len(t.Data) == 0 {
		return t.Start
	}
	return t.Start.Add(time.Duration(len(t.Data)-1) * t.Delta())
}

// TimeAt returns the timestamp of sample i.
func (t *Trace) TimeAt(i int) time.Time {
	return t.Start.Add(time.Duration(i) * t.Delta())
}

// Key returns the (station, channel) key for this trace.
func (t *Trace) Key() ChannelKey {
	return ChannelKey{Station: t.Station, Channel: t.Channel}
}

// Stream is an ordered collection of traces, one per contiguous segment.
type Stream []*Trace

// Count returns the number of traces in the stream.
func (s Stream) Count() int {
	return len(s)
}

// First returns the primary trace, or nil for an empty stream.
func (s Stream) First() *Trace {
	if len(s) == 0 {
		return nil
	}
	return s[0]
}

// TimeUnit selects the unit of the timestamp series returned alongside a
// stream.
type TimeUnit string

const (
	// Milliseconds yields epoch milliseconds (plotting front ends expect this).
	Milliseconds TimeUnit = "ms"
	// Seconds yields whole epoch seconds.
	Seconds TimeUnit = "s"
)

// Valid reports whether u is a recognized time unit.
func (u TimeUnit) Valid() bool {
	return u == Milliseconds || u == Seconds
}
