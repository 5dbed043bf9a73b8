package config

import "time"

// Config is the root configuration for a fetcher instance.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Filter   FilterConfig   `yaml:"filter"`
	Window   WindowConfig   `yaml:"window"`
	Output   OutputConfig   `yaml:"output"`
	Stations StationsConfig `yaml:"stations"`
	Database DBConfig       `yaml:"database"`
}

// ServerConfig holds the waveform gateway connection settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   int           `yaml:"max_retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// FilterConfig holds the Butterworth bandpass settings.
type FilterConfig struct {
	Enabled *bool   `yaml:"enabled"` // nil means default (on)
	LowCut  float64 `yaml:"lowcut"`  // Hz
	HighCut float64 `yaml:"highcut"` // Hz
	Order   int     `yaml:"order"`
}

// WindowConfig holds trimming and gating settings.
type WindowConfig struct {
	// MinSamples rejects merged traces shorter than this. Zero disables
	// the gate.
	MinSamples int `yaml:"min_samples"`
	// Padding is added to both ends of the requested window before the
	// fetch so trimming and filtering have edge margin.
	Padding time.Duration `yaml:"padding"`
}

// OutputConfig holds sample and timestamp normalization settings.
type OutputConfig struct {
	// SampleFormat is "int" (truncate samples to whole counts before
	// merging) or "float" (leave raw values).
	SampleFormat string `yaml:"sample_format"`
	// TimeUnit is "ms" or "s" for the returned timestamp series.
	TimeUnit string `yaml:"time_unit"`
	// Normalize applies the per-station scale divisor and zero-centers
	// each trace. nil means default (on).
	Normalize *bool `yaml:"normalize"`
}

// StationsConfig locates the file-backed station scale table. Ignored when
// a database host is configured.
type StationsConfig struct {
	Path string `yaml:"path"`
}

// DBConfig holds the optional PostgreSQL station metadata connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// Enabled reports whether database-backed station metadata is configured.
func (db DBConfig) Enabled() bool {
	return db.Host != ""
}

// FilterEnabled resolves the filter toggle with its default.
func (c *Config) FilterEnabled() bool {
	if c.Filter.Enabled == nil {
		return DefaultFilterEnabled
	}
	return *c.Filter.Enabled
}

// NormalizeEnabled resolves the normalization toggle with its default.
func (c *Config) NormalizeEnabled() bool {
	if c.Output.Normalize == nil {
		return DefaultNormalize
	}
	return *c.Output.Normalize
}
