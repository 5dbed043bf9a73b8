// Package loader implements the waveform loading pipeline: availability
// gating, padded fetch with wildcard-channel fallback, gap merging, optional
// detrend/bandpass filtering, window trimming, timestamp reconstruction, and
// per-station amplitude normalization.
//
// Expected no-data conditions (no availability, empty fetch, too few
// samples) are soft failures: Load returns a (nil, nil) result with a nil
// error and logs a warning. Only unexpected client or store errors surface
// as errors.
package loader
