/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// ClientFactory creates AWS clients with proper region configuration
type ClientFactory interface {
	// GetCloudFormationOperations returns CloudFormation operations for the specified region.
	// An empty region selects the region of the shared configuration.
	GetCloudFormationOperations(ctx context.Context, region string) (CloudFormationOperations, error)

	// GetBaseConfig returns the shared AWS configuration (for debugging)
	GetBaseConfig() aws.Config
}

// DefaultClientFactory implements ClientFactory with caching and shared authentication
type DefaultClientFactory struct {
	baseConfig  aws.Config
	clientCache map[string]CloudFormationOperations
	mutex       sync.RWMutex
}

// NewClientFactory creates a client factory with shared authentication
func NewClientFactory(ctx context.Context, cfg Config) (ClientFactory, error) {
	baseConfig, err := LoadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return newClientFactoryWithConfig(baseConfig), nil
}

func newClientFactoryWithConfig(baseConfig aws.Config) *DefaultClientFactory {
	return &DefaultClientFactory{
		baseConfig:  baseConfig,
		clientCache: make(map[string]CloudFormationOperations),
	}
}

// GetCloudFormationOperations returns CloudFormation operations for the specified region
func (f *DefaultClientFactory) GetCloudFormationOperations(ctx context.Context, region string) (CloudFormationOperations, error) {
	if region == "" {
		region = f.baseConfig.Region
	}
	if region == "" {
		return nil, fmt.Errorf("no AWS region configured; set --region, AWS_REGION or a profile region")
	}

	// Check cache first (read lock)
	f.mutex.RLock()
	if ops, exists := f.clientCache[region]; exists {
		f.mutex.RUnlock()
		return ops, nil
	}
	f.mutex.RUnlock()

	// Create region-specific config from base config
	regionConfig := f.baseConfig.Copy()
	regionConfig.Region = region

	ops := NewCloudFormationOperationsWithClient(cloudformation.NewFromConfig(regionConfig))

	// Cache for future use (write lock)
	f.mutex.Lock()
	f.clientCache[region] = ops
	f.mutex.Unlock()

	return ops, nil
}

// GetBaseConfig returns the shared AWS configuration
func (f *DefaultClientFactory) GetBaseConfig() aws.Config {
	return f.baseConfig
}
