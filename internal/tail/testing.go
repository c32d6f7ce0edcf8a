/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package tail

import (
	"context"
	"sync"

	"github.com/orien/stacktail/internal/aws"
)

// Poll is one scripted answer of a ScriptedSource
type Poll struct {
	Events []aws.StackEvent
	Err    error
}

// ScriptedSource is an EventSource replaying a fixed sequence of polls.
// Once the script is exhausted the last poll repeats.
type ScriptedSource struct {
	mu    sync.Mutex
	polls []Poll
	calls int
}

// NewScriptedSource creates a source answering with polls in order
func NewScriptedSource(polls ...Poll) *ScriptedSource {
	return &ScriptedSource{polls: polls}
}

func (s *ScriptedSource) DescribeStackEvents(ctx context.Context, stackName string) ([]aws.StackEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.polls) == 0 {
		return []aws.StackEvent{}, nil
	}
	i := s.calls
	if i >= len(s.polls) {
		i = len(s.polls) - 1
	}
	s.calls++

	poll := s.polls[i]
	if poll.Err != nil {
		return nil, poll.Err
	}
	events := make([]aws.StackEvent, len(poll.Events))
	copy(events, poll.Events)
	return events, nil
}

// Calls returns how many times the source was queried
func (s *ScriptedSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
