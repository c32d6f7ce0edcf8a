/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/orien/stacktail/internal/log"
	"github.com/orien/stacktail/internal/version"
)

// Config holds configuration for creating an AWS client
type Config struct {
	Region  string
	Profile string
}

// LoadAWSConfig loads the shared AWS configuration, honouring the optional
// region and profile overrides. Everything else comes from the SDK's default chain.
func LoadAWSConfig(ctx context.Context, cfg Config) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithAppID(version.AppID()),
	}

	// Set region if specified
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	// Set profile if specified
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}
	log.Debugf("loading AWS configuration: profile=%q region=%q", cfg.Profile, cfg.Region)

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return awsCfg, nil
}
