/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/orien/stacktail/internal/aws"
)

func TestEventsCommand_Text(t *testing.T) {
	factory, cfOps := aws.NewMockClientFactoryForRegion(testRegion)
	useClientFactory(t, factory)
	cfOps.On("DescribeStackEvents", mock.Anything, "my-app").Return(completedCreate()[:2], nil).Once()

	out, err := executeCommand(t, "events", "my-app", "--region", testRegion)

	require.NoError(t, err)
	assert.Equal(t,
		"my-app\tAWS::CloudFormation::Stack\tCREATE_IN_PROGRESS\n"+
			"Bucket\tAWS::S3::Bucket\tCREATE_IN_PROGRESS\n",
		out, "events lists the newest event too, even when it is not terminal")
	cfOps.AssertExpectations(t)
}

func TestEventsCommand_JSON(t *testing.T) {
	factory, cfOps := aws.NewMockClientFactoryForRegion(testRegion)
	useClientFactory(t, factory)
	cfOps.On("DescribeStackEvents", mock.Anything, "my-app").Return(completedCreate(), nil)

	out, err := executeCommand(t, "events", "my-app", "--region", testRegion, "--output", "json")

	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 4)
	assert.Equal(t, "my-app", decoded[3]["logicalResourceId"])
	assert.Equal(t, "CREATE_COMPLETE", decoded[3]["resourceStatus"])
}

func TestEventsCommand_YAML(t *testing.T) {
	factory, cfOps := aws.NewMockClientFactoryForRegion(testRegion)
	useClientFactory(t, factory)
	cfOps.On("DescribeStackEvents", mock.Anything, "my-app").Return(completedCreate(), nil)

	out, err := executeCommand(t, "events", "my-app", "--region", testRegion, "-o", "yaml")

	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 4)
	assert.Equal(t, "Bucket", decoded[1]["logicalResourceId"])
}

func TestEventsCommand_UnsupportedOutput(t *testing.T) {
	factory := &aws.MockClientFactory{}
	useClientFactory(t, factory)

	_, err := executeCommand(t, "events", "my-app", "--region", testRegion, "--output", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.type must be one of text, json or yaml")
	factory.AssertNotCalled(t, "GetCloudFormationOperations")
}

func TestEventsCommand_FetchFailure(t *testing.T) {
	factory, cfOps := aws.NewMockClientFactoryForRegion(testRegion)
	useClientFactory(t, factory)
	cfOps.On("DescribeStackEvents", mock.Anything, "gone").Return(nil, errors.New("Stack with id gone does not exist"))

	out, err := executeCommand(t, "events", "gone", "--region", testRegion)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list events for stack gone")
	assert.True(t, aws.IsStackNotFound(err))
	assert.Empty(t, out)
}
