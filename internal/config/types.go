/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"
	"fmt"
	"time"
)

// Defaults applied before any file, environment or flag value
const (
	DefaultInterval = time.Second
	DefaultFormat   = "{{.LogicalResourceId}}\t{{.ResourceType}}\t{{.ResourceStatus}}"
	DefaultOutput   = "text"
)

// ConfigProvider defines the interface for loading configuration
type ConfigProvider interface {
	// LoadConfig loads the fully merged configuration
	LoadConfig(ctx context.Context) (*Config, error)
}

// Config is passed explicitly into every operation instead of living in package state
type Config struct {
	Region  string       `mapstructure:"region"`
	Profile string       `mapstructure:"profile"`
	Tail    TailConfig   `mapstructure:"tail"`
	Output  OutputConfig `mapstructure:"output"`
}

// TailConfig controls the stack event polling loop
type TailConfig struct {
	// Interval is the fixed delay between two polls
	Interval time.Duration `mapstructure:"interval"`

	// Timeout bounds the whole session; zero means no bound
	Timeout time.Duration `mapstructure:"timeout"`

	// MaxPolls caps the number of polls; zero means no cap
	MaxPolls int `mapstructure:"max_polls"`

	// NotFoundGrace tolerates "stack does not exist" for this long after the session starts
	NotFoundGrace time.Duration `mapstructure:"not_found_grace"`
}

// OutputConfig controls how events are rendered
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	Type    string `mapstructure:"type"`
	NoColor bool   `mapstructure:"no_color"`
}

// Default returns the configuration used when nothing else is specified
func Default() Config {
	return Config{
		Tail: TailConfig{
			Interval: DefaultInterval,
		},
		Output: OutputConfig{
			Format: DefaultFormat,
			Type:   DefaultOutput,
		},
	}
}

// Validate checks the configuration for values the tail loop cannot work with
func (c *Config) Validate() error {
	if c.Tail.Interval <= 0 {
		return fmt.Errorf("tail.interval must be positive, got %s", c.Tail.Interval)
	}
	if c.Tail.Timeout < 0 {
		return fmt.Errorf("tail.timeout must not be negative, got %s", c.Tail.Timeout)
	}
	if c.Tail.MaxPolls < 0 {
		return fmt.Errorf("tail.max_polls must not be negative, got %d", c.Tail.MaxPolls)
	}
	if c.Tail.NotFoundGrace < 0 {
		return fmt.Errorf("tail.not_found_grace must not be negative, got %s", c.Tail.NotFoundGrace)
	}
	switch c.Output.Type {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output.type must be one of text, json or yaml, got %q", c.Output.Type)
	}
	return nil
}
