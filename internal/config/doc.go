// Package config loads and validates the waveform-fetch configuration.
//
// Configuration is a YAML file with ${VAR} environment expansion. Every
// optional field has a documented default applied by LoadWithDefaults.
package config
