/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFactory_CachesPerRegion(t *testing.T) {
	ctx := context.Background()
	factory := newClientFactoryWithConfig(aws.Config{Region: "us-east-1"})

	first, err := factory.GetCloudFormationOperations(ctx, "eu-west-1")
	require.NoError(t, err)
	second, err := factory.GetCloudFormationOperations(ctx, "eu-west-1")
	require.NoError(t, err)
	other, err := factory.GetCloudFormationOperations(ctx, "ap-southeast-2")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Len(t, factory.clientCache, 2)
}

func TestClientFactory_EmptyRegionUsesBaseConfig(t *testing.T) {
	ctx := context.Background()
	factory := newClientFactoryWithConfig(aws.Config{Region: "us-west-2"})

	ops, err := factory.GetCloudFormationOperations(ctx, "")
	require.NoError(t, err)

	cached, exists := factory.clientCache["us-west-2"]
	require.True(t, exists)
	assert.Same(t, cached, ops)
}

func TestClientFactory_NoRegionAnywhere(t *testing.T) {
	factory := newClientFactoryWithConfig(aws.Config{})

	ops, err := factory.GetCloudFormationOperations(context.Background(), "")

	assert.Nil(t, ops)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no AWS region configured")
}

func TestClientFactory_BaseConfigIsNotMutated(t *testing.T) {
	factory := newClientFactoryWithConfig(aws.Config{Region: "us-east-1"})

	_, err := factory.GetCloudFormationOperations(context.Background(), "eu-central-1")
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", factory.GetBaseConfig().Region)
}

func TestClientFactory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	factory := newClientFactoryWithConfig(aws.Config{Region: "us-east-1"})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := factory.GetCloudFormationOperations(ctx, "us-east-1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, factory.clientCache, 1)
}
