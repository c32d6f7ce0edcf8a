/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// CloudFormationClient defines the subset of the AWS CloudFormation API used by stacktail
// This allows for easier testing with mock implementations
type CloudFormationClient interface {
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	DescribeStackEvents(ctx context.Context, params *cloudformation.DescribeStackEventsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackEventsOutput, error)
}

// Ensure that the actual CloudFormation client implements our interface
var _ CloudFormationClient = (*cloudformation.Client)(nil)

// Ensure that DefaultCloudFormationOperations implements CloudFormationOperations
var _ CloudFormationOperations = (*DefaultCloudFormationOperations)(nil)

// Ensure that DefaultClientFactory implements ClientFactory
var _ ClientFactory = (*DefaultClientFactory)(nil)

// CloudFormationOperations defines the read-only stack queries stacktail performs
type CloudFormationOperations interface {
	// DescribeStackEvents returns every event of the stack, oldest first
	DescribeStackEvents(ctx context.Context, stackName string) ([]StackEvent, error)

	// GetStackStatus returns the current status of the stack
	GetStackStatus(ctx context.Context, stackName string) (StackStatus, error)

	// StackExists reports whether CloudFormation knows the stack
	StackExists(ctx context.Context, stackName string) (bool, error)
}
