package winston

import (
	"net/url"
	"time"
)

// Query holds the selection parameters for availability and waveform
// requests. Empty strings and zero times are omitted from the outbound
// request.
type Query struct {
	Network  string
	Station  string
	Location string
	Channel  string
	Start    time.Time
	End      time.Time
}

// selectionValues enumerates the non-empty, non-time parameters.
func (q Query) selectionValues() url.Values {
	v := url.Values{}
	if q.Network != "" {
		v.Set("network", q.Network)
	}
	if q.Station != "" {
		v.Set("station", q.Station)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	if q.Channel != "" {
		v.Set("channel", q.Channel)
	}
	return v
}

// values enumerates all non-empty parameters including the time window.
func (q Query) values() url.Values {
	v := q.selectionValues()
	if !q.Start.IsZero() {
		v.Set("start", q.Start.UTC().Format(time.RFC3339Nano))
	}
	if !q.End.IsZero() {
		v.Set("end", q.End.UTC().Format(time.RFC3339Nano))
	}
	return v
}

// AvailabilityResponse from GET /availability
type AvailabilityResponse struct {
	Channels []APIAvailability `json:"channels"`
}

// APIAvailability is one per-channel availability span from the gateway.
type APIAvailability struct {
	Network  string `json:"network"`
	Station  string `json:"station"`
	Location string `json:"location"`
	Channel  string `json:"channel"`
	FromMS   int64  `json:"from_ms"` // Epoch milliseconds
	ToMS     int64  `json:"to_ms"`   // Epoch milliseconds
}

// WaveformsResponse from GET /waveforms
type WaveformsResponse struct {
	Traces []APITrace `json:"traces"`
}

// APITrace is one contiguous trace segment from the gateway.
type APITrace struct {
	Network    string    `json:"network"`
	Station    string    `json:"station"`
	Location   string    `json:"location"`
	Channel    string    `json:"channel"`
	StartMS    int64     `json:"start_ms"`    // Epoch milliseconds
	SampleRate float64   `json:"sample_rate"` // Hz
	Samples    []float64 `json:"samples"`
}
