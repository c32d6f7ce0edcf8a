/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package tail follows a CloudFormation stack's event log until the stack reaches a terminal state.
package tail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/orien/stacktail/internal/aws"
	"github.com/orien/stacktail/internal/log"
	"github.com/orien/stacktail/internal/output"
)

var (
	// ErrMissingStackName is returned when no stack name is given
	ErrMissingStackName = errors.New("stack name is required")

	// ErrDeadlineExceeded is returned when the overall timeout elapses first
	ErrDeadlineExceeded = errors.New("stack did not reach a terminal state before the timeout")

	// ErrPollLimitReached is returned when the poll cap is used up first
	ErrPollLimitReached = errors.New("stack did not reach a terminal state within the poll limit")
)

// EventSource lists a stack's events, oldest first
type EventSource interface {
	DescribeStackEvents(ctx context.Context, stackName string) ([]aws.StackEvent, error)
}

// Options bound and shape a tail session
type Options struct {
	// Interval is the fixed delay between polls
	Interval time.Duration

	// Timeout bounds the whole session; zero means wait forever
	Timeout time.Duration

	// MaxPolls caps the number of polls; zero means no cap
	MaxPolls int

	// NotFoundGrace treats "stack does not exist" as "no events yet" for this long after start
	NotFoundGrace time.Duration

	// Since drops events older than this instant; zero keeps the full history
	Since time.Time
}

// Result describes how a session ended
type Result struct {
	Final aws.StackEvent
	Polls int
}

// Tailer polls an EventSource and prints events as they appear
type Tailer struct {
	source    EventSource
	formatter *output.Formatter
	out       io.Writer
	opts      Options

	now  func() time.Time
	wait func(ctx context.Context, d time.Duration) error
}

// NewTailer creates a tailer writing formatted events to out
func NewTailer(source EventSource, formatter *output.Formatter, out io.Writer, opts Options) *Tailer {
	return &Tailer{
		source:    source,
		formatter: formatter,
		out:       out,
		opts:      opts,
		now:       time.Now,
		wait:      sleep,
	}
}

// Tail blocks until the newest event of stackName is terminal for the stack, then prints
// that event. Events seen for the first time are printed as they appear. Any fetch failure
// ends the session; the stack's status is then unknown.
func (t *Tailer) Tail(ctx context.Context, stackName string) (*Result, error) {
	if stackName == "" {
		return nil, ErrMissingStackName
	}

	parent := ctx
	if t.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.opts.Timeout)
		defer cancel()
	}

	start := t.now()
	var previous Snapshot

	for poll := 1; ; poll++ {
		events, err := t.source.DescribeStackEvents(ctx, stackName)
		if err != nil {
			if stopErr := t.interrupted(parent, ctx, stackName); stopErr != nil {
				return nil, stopErr
			}
			if !t.withinGrace(err, start) {
				return nil, fmt.Errorf("failed to fetch events for stack %s: %w", stackName, err)
			}
			log.Warnf("stack %s does not exist yet, waiting (poll %d)", stackName, poll)
			events = nil
		}

		events = since(events, t.opts.Since)
		log.Debugf("poll %d of stack %s returned %d events", poll, stackName, len(events))

		if len(events) > 0 {
			last := events[len(events)-1]
			if err := t.printNew(&previous, events[:len(events)-1]); err != nil {
				return nil, err
			}

			if IsTerminal(last, stackName) {
				if err := t.print(last); err != nil {
					return nil, err
				}
				return &Result{Final: last, Polls: poll}, nil
			}
		}

		if t.opts.MaxPolls > 0 && poll >= t.opts.MaxPolls {
			return nil, fmt.Errorf("%w (%d polls)", ErrPollLimitReached, poll)
		}

		if err := t.wait(ctx, t.opts.Interval); err != nil {
			if stopErr := t.interrupted(parent, ctx, stackName); stopErr != nil {
				return nil, stopErr
			}
			return nil, err
		}
	}
}

// printNew prints the events whose lines are missing from previous, then replaces previous
func (t *Tailer) printNew(previous *Snapshot, events []aws.StackEvent) error {
	lines := make([]string, len(events))
	for i, event := range events {
		line, err := t.formatter.Line(event)
		if err != nil {
			return err
		}
		lines[i] = line
	}

	for _, i := range previous.Delta(lines) {
		if err := t.print(events[i]); err != nil {
			return err
		}
	}

	previous.Replace(lines)
	return nil
}

func (t *Tailer) print(event aws.StackEvent) error {
	line, err := t.formatter.Styled(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(t.out, line); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

// interrupted explains why ctx stopped, or returns nil while it is still live
func (t *Tailer) interrupted(parent, ctx context.Context, stackName string) error {
	if err := parent.Err(); err != nil {
		return fmt.Errorf("tail of stack %s interrupted: %w", stackName, err)
	}
	if ctx.Err() != nil {
		return fmt.Errorf("%w (%s)", ErrDeadlineExceeded, t.opts.Timeout)
	}
	return nil
}

func (t *Tailer) withinGrace(err error, start time.Time) bool {
	return t.opts.NotFoundGrace > 0 &&
		aws.IsStackNotFound(err) &&
		t.now().Sub(start) < t.opts.NotFoundGrace
}

func since(events []aws.StackEvent, cutoff time.Time) []aws.StackEvent {
	if cutoff.IsZero() || len(events) == 0 {
		return events
	}

	kept := make([]aws.StackEvent, 0, len(events))
	for _, event := range events {
		if !event.Timestamp.Before(cutoff) {
			kept = append(kept, event)
		}
	}
	return kept
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
