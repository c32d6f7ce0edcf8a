/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/orien/stacktail/internal/aws"
	"github.com/orien/stacktail/internal/config"
	"github.com/orien/stacktail/internal/config/file"
	"github.com/orien/stacktail/internal/output"
)

var (
	// clientFactory can be injected for testing
	clientFactory aws.ClientFactory

	// configProvider replaces the file, environment and flag lookup when set
	configProvider config.ConfigProvider
)

// SetClientFactory allows injection of a client factory (for testing)
func SetClientFactory(f aws.ClientFactory) {
	clientFactory = f
}

// SetConfigProvider allows injection of a configuration provider (for testing)
func SetConfigProvider(p config.ConfigProvider) {
	configProvider = p
}

// flagBinding ties a configuration key to the command-line flag overriding it
type flagBinding struct {
	key  string
	flag string
}

var globalBindings = []flagBinding{
	{key: "region", flag: "region"},
	{key: "profile", flag: "profile"},
}

// loadConfig merges the configuration file, environment and the given flag bindings.
// The default file may be absent; an explicitly named one must exist.
func loadConfig(ctx context.Context, cmd *cobra.Command, bindings ...flagBinding) (*config.Config, error) {
	if configProvider != nil {
		return configProvider.LoadConfig(ctx)
	}

	filename, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	provider := file.NewProvider(filename, cmd.Flags().Changed("config"))
	for _, b := range append(globalBindings, bindings...) {
		provider.BindFlag(b.key, cmd.Flags(), b.flag)
	}

	return provider.LoadConfig(ctx)
}

// getCloudFormationOperations returns operations for the configured region,
// creating the client factory on first use
func getCloudFormationOperations(ctx context.Context, cfg *config.Config) (aws.CloudFormationOperations, error) {
	if clientFactory == nil {
		f, err := aws.NewClientFactory(ctx, aws.Config{Region: cfg.Region, Profile: cfg.Profile})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS client: %w", err)
		}
		clientFactory = f
	}

	return clientFactory.GetCloudFormationOperations(ctx, cfg.Region)
}

// newFormatter builds the event formatter for cmd's standard output
func newFormatter(cmd *cobra.Command, cfg *config.Config) (*output.Formatter, error) {
	styles := output.NewStyles(output.ColourEnabled(cmd.OutOrStdout(), cfg.Output.NoColor))
	return output.NewFormatter(cfg.Output.Format, styles)
}

// parseSince accepts an RFC 3339 timestamp or a duration counted back from now.
// An empty value means no lower bound.
func parseSince(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	if d, err := time.ParseDuration(value); err == nil {
		if d < 0 {
			return time.Time{}, fmt.Errorf("invalid --since %q: duration must not be negative", value)
		}
		return now.Add(-d), nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --since %q: expected a duration such as 15m or an RFC 3339 time", value)
	}
	return t, nil
}
