/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orien/stacktail/internal/aws"
	"github.com/orien/stacktail/internal/config"
)

func testEvent() aws.StackEvent {
	return aws.StackEvent{
		EventId:              "bucket-create-1",
		StackName:            "storage",
		LogicalResourceId:    "Bucket",
		PhysicalResourceId:   "storage-bucket-1x2y3z",
		ResourceType:         "AWS::S3::Bucket",
		ResourceStatus:       aws.StackStatusCreateFailed,
		ResourceStatusReason: "Bucket name already taken",
		Timestamp:            time.Date(2025, 4, 2, 8, 15, 30, 0, time.UTC),
	}
}

func TestFormatter_DefaultFormat(t *testing.T) {
	f, err := NewFormatter(config.DefaultFormat, nil)
	require.NoError(t, err)

	line, err := f.Line(testEvent())

	require.NoError(t, err)
	assert.Equal(t, "Bucket\tAWS::S3::Bucket\tCREATE_FAILED", line)
}

func TestFormatter_ExpandsCommandLineEscapes(t *testing.T) {
	f, err := NewFormatter(`{{.LogicalResourceId}}\t{{.ResourceStatus}}`, nil)
	require.NoError(t, err)

	line, err := f.Line(testEvent())

	require.NoError(t, err)
	assert.Equal(t, "Bucket\tCREATE_FAILED", line)
}

func TestFormatter_SprigFunctions(t *testing.T) {
	f, err := NewFormatter(`{{.Timestamp.Format "15:04:05"}} {{.LogicalResourceId | upper}} {{.ResourceStatusReason | default "-" | quote}}`, nil)
	require.NoError(t, err)

	line, err := f.Line(testEvent())
	require.NoError(t, err)
	assert.Equal(t, `08:15:30 BUCKET "Bucket name already taken"`, line)

	event := testEvent()
	event.ResourceStatusReason = ""
	line, err = f.Line(event)
	require.NoError(t, err)
	assert.Equal(t, `08:15:30 BUCKET "-"`, line)
}

func TestFormatter_TrailingNewlineIsTrimmed(t *testing.T) {
	f, err := NewFormatter("{{.EventId}}\n", nil)
	require.NoError(t, err)

	line, err := f.Line(testEvent())

	require.NoError(t, err)
	assert.Equal(t, "bucket-create-1", line)
}

func TestFormatter_ParseError(t *testing.T) {
	f, err := NewFormatter("{{.LogicalResourceId", nil)

	assert.Nil(t, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse event format")
}

func TestFormatter_UnknownField(t *testing.T) {
	f, err := NewFormatter("{{.Nope}}", nil)
	require.NoError(t, err)

	_, err = f.Line(testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render event")
}

func TestFormatter_StyledWithoutColourMatchesLine(t *testing.T) {
	f, err := NewFormatter(config.DefaultFormat, NewStyles(false))
	require.NoError(t, err)

	line, err := f.Line(testEvent())
	require.NoError(t, err)
	styled, err := f.Styled(testEvent())
	require.NoError(t, err)

	assert.Equal(t, line, styled)
}

func TestFormatter_StyledColoursOnlyTheStatus(t *testing.T) {
	f, err := NewFormatter(config.DefaultFormat, NewStyles(true))
	require.NoError(t, err)

	styled, err := f.Styled(testEvent())
	require.NoError(t, err)
	line, err := f.Line(testEvent())
	require.NoError(t, err)

	assert.NotEqual(t, line, styled)
	assert.Contains(t, styled, "Bucket\tAWS::S3::Bucket\t")
	assert.Contains(t, styled, "CREATE_FAILED")
	assert.Contains(t, styled, "\x1b[")
}
