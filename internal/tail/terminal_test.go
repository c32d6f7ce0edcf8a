/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package tail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orien/stacktail/internal/aws"
)

const testStackARN = "arn:aws:cloudformation:us-east-1:123456789012:stack/network/4f0c6a30-1a2b-11f0-9c1d-0a1b2c3d4e5f"

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name      string
		event     aws.StackEvent
		stackName string
		expected  bool
	}{
		{
			name:      "stack create complete",
			event:     aws.StackEvent{LogicalResourceId: "network", ResourceStatus: aws.StackStatusCreateComplete},
			stackName: "network",
			expected:  true,
		},
		{
			name:      "stack rollback failed",
			event:     aws.StackEvent{LogicalResourceId: "network", ResourceStatus: aws.StackStatusUpdateRollbackFailed},
			stackName: "network",
			expected:  true,
		},
		{
			name:      "stack still in progress",
			event:     aws.StackEvent{LogicalResourceId: "network", ResourceStatus: aws.StackStatusUpdateInProgress},
			stackName: "network",
			expected:  false,
		},
		{
			name:      "cleanup in progress is not complete",
			event:     aws.StackEvent{LogicalResourceId: "network", ResourceStatus: aws.StackStatusUpdateCompleteCleanup},
			stackName: "network",
			expected:  false,
		},
		{
			name:      "resource completion does not end the stack",
			event:     aws.StackEvent{LogicalResourceId: "Vpc", ResourceStatus: aws.StackStatusCreateComplete},
			stackName: "network",
			expected:  false,
		},
		{
			name:      "name prefix is not a match",
			event:     aws.StackEvent{LogicalResourceId: "network-v2", ResourceStatus: aws.StackStatusCreateComplete},
			stackName: "network",
			expected:  false,
		},
		{
			name:      "stack tracked by ARN matched on physical id",
			event:     aws.StackEvent{LogicalResourceId: "network", PhysicalResourceId: testStackARN, ResourceStatus: aws.StackStatusDeleteComplete},
			stackName: testStackARN,
			expected:  true,
		},
		{
			name:      "stack tracked by ARN matched on name",
			event:     aws.StackEvent{LogicalResourceId: "network", ResourceStatus: aws.StackStatusCreateFailed},
			stackName: testStackARN,
			expected:  true,
		},
		{
			name:      "resource of stack tracked by ARN",
			event:     aws.StackEvent{LogicalResourceId: "Vpc", PhysicalResourceId: "vpc-123", ResourceStatus: aws.StackStatusCreateComplete},
			stackName: testStackARN,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTerminal(tt.event, tt.stackName))
		})
	}
}

func TestNameFromStackID(t *testing.T) {
	assert.Equal(t, "network", nameFromStackID(testStackARN))
	assert.Equal(t, "plain", nameFromStackID("plain"))
}
