// Package model defines shared data types used across waveform-fetch.
//
// Conventions:
//   - Samples: float64, with math.NaN() marking missing data
//   - Timestamps: time.Time internally; []int64 epoch values (ms or s) on output
//   - Channel identity: SCNL strings (station, channel, network, location)
package model
