// Package winston provides the HTTP client for the waveform gateway.
//
// Two operations are exposed:
//   - GET /availability: per-channel data availability spans
//   - GET /waveforms: raw trace segments for a station/time window
//
// The gateway fronts a winston wave server; its wire protocol is not our
// concern here.
package winston
