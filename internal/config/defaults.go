package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultServerPort    = 16022
	DefaultTimeout       = 30 * time.Second
	DefaultMaxRetries    = 3
	DefaultRetryBackoff  = 1 * time.Second
	DefaultFilterEnabled = true
	DefaultLowCut        = 0.5
	DefaultHighCut       = 15.0
	DefaultFilterOrder   = 2
	DefaultPadding       = 10 * time.Second
	DefaultSampleFormat  = "int"
	DefaultTimeUnit      = "ms"
	DefaultNormalize     = true
	DefaultStationsPath  = "stations.yaml"
	DefaultDBPort        = 5432
	DefaultDBSSLMode     = "prefer"
	DefaultMaxConns      = 10
	DefaultMinConns      = 2
)

func (c *Config) applyDefaults() {
	// Server defaults
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = DefaultTimeout
	}
	if c.Server.MaxRetries == 0 {
		c.Server.MaxRetries = DefaultMaxRetries
	}
	if c.Server.RetryBackoff == 0 {
		c.Server.RetryBackoff = DefaultRetryBackoff
	}

	// Filter defaults
	if c.Filter.LowCut == 0 {
		c.Filter.LowCut = DefaultLowCut
	}
	if c.Filter.HighCut == 0 {
		c.Filter.HighCut = DefaultHighCut
	}
	if c.Filter.Order == 0 {
		c.Filter.Order = DefaultFilterOrder
	}

	// Window defaults. MinSamples has no default: zero leaves the short
	// trace gate disabled.
	if c.Window.Padding == 0 {
		c.Window.Padding = DefaultPadding
	}

	// Output defaults
	if c.Output.SampleFormat == "" {
		c.Output.SampleFormat = DefaultSampleFormat
	}
	if c.Output.TimeUnit == "" {
		c.Output.TimeUnit = DefaultTimeUnit
	}

	// Stations defaults
	if c.Stations.Path == "" {
		c.Stations.Path = DefaultStationsPath
	}

	// Database defaults (only meaningful when a host is set)
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}
}
