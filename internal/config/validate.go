package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("server.host is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.MaxRetries < 0 {
		return errors.New("server.max_retries must be >= 0")
	}

	if c.Filter.LowCut <= 0 {
		return fmt.Errorf("filter.lowcut must be > 0, got %g", c.Filter.LowCut)
	}
	if c.Filter.HighCut <= c.Filter.LowCut {
		return fmt.Errorf("filter.highcut (%g) must exceed lowcut (%g)", c.Filter.HighCut, c.Filter.LowCut)
	}
	if c.Filter.Order < 1 {
		return errors.New("filter.order must be >= 1")
	}

	if c.Window.MinSamples < 0 {
		return errors.New("window.min_samples must be >= 0")
	}
	if c.Window.Padding < 0 {
		return errors.New("window.padding must be >= 0")
	}

	if c.Output.SampleFormat != "int" && c.Output.SampleFormat != "float" {
		return fmt.Errorf("output.sample_format must be \"int\" or \"float\", got %q", c.Output.SampleFormat)
	}
	if c.Output.TimeUnit != "ms" && c.Output.TimeUnit != "s" {
		return fmt.Errorf("output.time_unit must be \"ms\" or \"s\", got %q", c.Output.TimeUnit)
	}

	if c.Database.Enabled() {
		if err := c.Database.validate("database"); err != nil {
			return err
		}
	} else if c.Stations.Path == "" {
		return errors.New("stations.path is required when no database is configured")
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
