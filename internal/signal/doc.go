// Package signal implements the numeric cleanup routines applied to fetched
// waveform streams: sample-type normalization, gap merging, linear detrend,
// zero-phase Butterworth bandpass filtering, window trimming, and amplitude
// scaling.
package signal
