/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"

	"github.com/orien/stacktail/internal/log"
)

// StackStatus represents the status of a CloudFormation stack or stack resource
type StackStatus string

const (
	StackStatusCreateInProgress         StackStatus = "CREATE_IN_PROGRESS"
	StackStatusCreateComplete           StackStatus = "CREATE_COMPLETE"
	StackStatusCreateFailed             StackStatus = "CREATE_FAILED"
	StackStatusDeleteInProgress         StackStatus = "DELETE_IN_PROGRESS"
	StackStatusDeleteComplete           StackStatus = "DELETE_COMPLETE"
	StackStatusDeleteFailed             StackStatus = "DELETE_FAILED"
	StackStatusUpdateInProgress         StackStatus = "UPDATE_IN_PROGRESS"
	StackStatusUpdateCompleteCleanup    StackStatus = "UPDATE_COMPLETE_CLEANUP_IN_PROGRESS"
	StackStatusUpdateComplete           StackStatus = "UPDATE_COMPLETE"
	StackStatusUpdateFailed             StackStatus = "UPDATE_FAILED"
	StackStatusUpdateRollbackInProgress StackStatus = "UPDATE_ROLLBACK_IN_PROGRESS"
	StackStatusUpdateRollbackComplete   StackStatus = "UPDATE_ROLLBACK_COMPLETE"
	StackStatusUpdateRollbackFailed     StackStatus = "UPDATE_ROLLBACK_FAILED"
	StackStatusRollbackInProgress       StackStatus = "ROLLBACK_IN_PROGRESS"
	StackStatusRollbackComplete         StackStatus = "ROLLBACK_COMPLETE"
	StackStatusRollbackFailed           StackStatus = "ROLLBACK_FAILED"
	StackStatusReviewInProgress         StackStatus = "REVIEW_IN_PROGRESS"
	StackStatusImportInProgress         StackStatus = "IMPORT_IN_PROGRESS"
	StackStatusImportComplete           StackStatus = "IMPORT_COMPLETE"
	StackStatusImportRollbackInProgress StackStatus = "IMPORT_ROLLBACK_IN_PROGRESS"
	StackStatusImportRollbackComplete   StackStatus = "IMPORT_ROLLBACK_COMPLETE"
	StackStatusImportRollbackFailed     StackStatus = "IMPORT_ROLLBACK_FAILED"
)

// IsTerminal reports whether CloudFormation has finished processing a request.
// A status is terminal when it ends in _COMPLETE or _FAILED.
func (s StackStatus) IsTerminal() bool {
	status := string(s)
	return strings.HasSuffix(status, "_COMPLETE") || strings.HasSuffix(status, "_FAILED")
}

// IsFailure reports whether the status describes a failed or rolled back operation
func (s StackStatus) IsFailure() bool {
	status := string(s)
	return strings.HasSuffix(status, "_FAILED") || strings.Contains(status, "ROLLBACK")
}

// StackEvent represents a single entry of a CloudFormation stack's event log
type StackEvent struct {
	EventId              string      `json:"eventId" yaml:"eventId"`
	StackName            string      `json:"stackName" yaml:"stackName"`
	LogicalResourceId    string      `json:"logicalResourceId" yaml:"logicalResourceId"`
	PhysicalResourceId   string      `json:"physicalResourceId,omitempty" yaml:"physicalResourceId,omitempty"`
	ResourceType         string      `json:"resourceType" yaml:"resourceType"`
	ResourceStatus       StackStatus `json:"resourceStatus" yaml:"resourceStatus"`
	ResourceStatusReason string      `json:"resourceStatusReason,omitempty" yaml:"resourceStatusReason,omitempty"`
	Timestamp            time.Time   `json:"timestamp" yaml:"timestamp"`
}

// DefaultCloudFormationOperations provides CloudFormation-specific operations
type DefaultCloudFormationOperations struct {
	client CloudFormationClient
}

// NewCloudFormationOperationsWithClient creates operations with a custom client (for testing)
func NewCloudFormationOperationsWithClient(client CloudFormationClient) *DefaultCloudFormationOperations {
	return &DefaultCloudFormationOperations{
		client: client,
	}
}

// DescribeStackEvents retrieves the complete event log of a stack ordered by timestamp ascending.
// A stack without events yields an empty slice and no error.
func (cf *DefaultCloudFormationOperations) DescribeStackEvents(ctx context.Context, stackName string) ([]StackEvent, error) {
	var events []StackEvent
	paginator := cloudformation.NewDescribeStackEventsPaginator(cf.client, &cloudformation.DescribeStackEventsInput{
		StackName: aws.String(stackName),
	})

	pages := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe stack events for %s: %w", stackName, err)
		}
		pages++

		for _, event := range page.StackEvents {
			events = append(events, convertStackEvent(event))
		}
	}

	// CloudFormation returns the newest event first
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	log.Debugf("described %d events for stack %s across %d pages", len(events), stackName, pages)
	if events == nil {
		events = []StackEvent{}
	}
	return events, nil
}

// GetStackStatus retrieves the current status of a stack
func (cf *DefaultCloudFormationOperations) GetStackStatus(ctx context.Context, stackName string) (StackStatus, error) {
	result, err := cf.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe stack %s: %w", stackName, err)
	}

	if len(result.Stacks) == 0 {
		return "", fmt.Errorf("stack %s not found", stackName)
	}

	return StackStatus(result.Stacks[0].StackStatus), nil
}

// StackExists checks if a stack exists
func (cf *DefaultCloudFormationOperations) StackExists(ctx context.Context, stackName string) (bool, error) {
	_, err := cf.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})

	if err != nil {
		if IsStackNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check if stack exists: %w", err)
	}

	return true, nil
}

// IsStackNotFound reports whether err is CloudFormation's "Stack with id X does not exist".
// CloudFormation signals this as a ValidationError, which it also uses for unrelated input
// problems, so the message has to be inspected as well.
func IsStackNotFound(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ValidationError" && strings.Contains(apiErr.ErrorMessage(), "does not exist")
	}

	return strings.Contains(err.Error(), "does not exist")
}

func convertStackEvent(event types.StackEvent) StackEvent {
	return StackEvent{
		EventId:              aws.ToString(event.EventId),
		StackName:            aws.ToString(event.StackName),
		LogicalResourceId:    aws.ToString(event.LogicalResourceId),
		PhysicalResourceId:   aws.ToString(event.PhysicalResourceId),
		ResourceType:         aws.ToString(event.ResourceType),
		ResourceStatus:       StackStatus(event.ResourceStatus),
		ResourceStatusReason: aws.ToString(event.ResourceStatusReason),
		Timestamp:            aws.ToTime(event.Timestamp),
	}
}
