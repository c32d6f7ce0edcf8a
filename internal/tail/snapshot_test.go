/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package tail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_EmptyReportsEverything(t *testing.T) {
	var s Snapshot

	assert.Equal(t, []int{0, 1, 2}, s.Delta([]string{"a", "b", "c"}))
	assert.Zero(t, s.Len())
}

func TestSnapshot_DeltaIsSetDifference(t *testing.T) {
	var s Snapshot
	s.Replace([]string{"a", "b"})

	// Reordering known lines reports nothing; only unseen lines come back
	assert.Equal(t, []int{1, 3}, s.Delta([]string{"b", "x", "a", "y"}))
}

func TestSnapshot_DuplicatesReportedOnce(t *testing.T) {
	var s Snapshot
	s.Replace([]string{"a"})

	assert.Equal(t, []int{1}, s.Delta([]string{"a", "b", "b"}))
}

func TestSnapshot_ReplaceDiscardsPreviousLines(t *testing.T) {
	var s Snapshot
	s.Replace([]string{"a", "b"})
	s.Replace([]string{"c"})

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []int{0}, s.Delta([]string{"a", "c"}))
}

func TestSnapshot_NothingNew(t *testing.T) {
	var s Snapshot
	s.Replace([]string{"a", "b"})

	assert.Empty(t, s.Delta([]string{"a", "b"}))
	assert.Empty(t, s.Delta(nil))
}
