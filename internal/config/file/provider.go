/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package file loads stacktail configuration from an optional YAML file,
// STACKTAIL_* environment variables and command-line flags, in increasing precedence.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/orien/stacktail/internal/config"
	"github.com/orien/stacktail/internal/log"
)

// EnvPrefix is prepended to every configuration key when read from the environment
const EnvPrefix = "STACKTAIL"

var _ config.ConfigProvider = (*Provider)(nil)

// Provider implements config.ConfigProvider on top of viper
type Provider struct {
	filename string
	required bool
	flags    *pflag.FlagSet
	bindings map[string]string
}

// NewProvider creates a provider for the given file. A missing file is
// tolerated unless required is set.
func NewProvider(filename string, required bool) *Provider {
	return &Provider{
		filename: filename,
		required: required,
		bindings: make(map[string]string),
	}
}

// BindFlag makes the named flag override the configuration key when it was set on the command line
func (p *Provider) BindFlag(key string, flags *pflag.FlagSet, flagName string) *Provider {
	p.flags = flags
	p.bindings[key] = flagName
	return p
}

// LoadConfig merges defaults, file, environment and flags into a validated Config
func (p *Provider) LoadConfig(ctx context.Context) (*config.Config, error) {
	defaults := config.Default()

	v := viper.New()
	v.SetConfigFile(p.filename)
	v.SetConfigType("yaml")
	v.SetDefault("region", defaults.Region)
	v.SetDefault("profile", defaults.Profile)
	v.SetDefault("tail.interval", defaults.Tail.Interval)
	v.SetDefault("tail.timeout", defaults.Tail.Timeout)
	v.SetDefault("tail.max_polls", defaults.Tail.MaxPolls)
	v.SetDefault("tail.not_found_grace", defaults.Tail.NotFoundGrace)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.type", defaults.Output.Type)
	v.SetDefault("output.no_color", defaults.Output.NoColor)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !isNotFound(err) || p.required {
			return nil, fmt.Errorf("failed to read config file '%s': %w", p.filename, err)
		}
		log.Debugf("config file %s not found, using defaults", p.filename)
	} else {
		log.Debugf("using config file: %s", v.ConfigFileUsed())
	}

	for key, flagName := range p.bindings {
		if p.flags == nil {
			break
		}
		flag := p.flags.Lookup(flagName)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag --%s: %w", flagName, err)
		}
	}

	cfg := defaults
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", p.filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
