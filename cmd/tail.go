/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/orien/stacktail/internal/config"
	"github.com/orien/stacktail/internal/log"
	"github.com/orien/stacktail/internal/tail"
)

var tailBindings = []flagBinding{
	{key: "tail.interval", flag: "interval"},
	{key: "tail.timeout", flag: "timeout"},
	{key: "tail.max_polls", flag: "max-polls"},
	{key: "tail.not_found_grace", flag: "not-found-grace"},
	{key: "output.format", flag: "format"},
	{key: "output.no_color", flag: "no-color"},
}

// tailCmd represents the tail command
var tailCmd = &cobra.Command{
	Use:   "tail <stack-name>",
	Short: "Stream a stack's events until it reaches a terminal state",
	Long: `Poll the event log of a CloudFormation stack and print every event the
first time it is seen. The command returns once the newest event belongs to
the stack itself and its status ends in _COMPLETE or _FAILED; that event is
printed last.

A stack that has reached a terminal state exits 0, whether the operation
succeeded or rolled back. Failing to read the event log, hitting --timeout or
--max-polls, or being interrupted exits 1.

Examples:
  stacktail tail my-app                       # Follow an operation on my-app
  stacktail tail my-app --since 5m            # Ignore events older than 5 minutes
  stacktail tail my-app --timeout 30m         # Give up after 30 minutes
  stacktail tail my-app --not-found-grace 1m  # Wait for a stack that is being created
  stacktail tail my-app --format '{{.Timestamp.Format "15:04:05"}} {{.LogicalResourceId}} {{.ResourceStatus}}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return tailStack(cmd.Context(), cmd, args[0])
	},
}

// tailStack follows the named stack using the merged configuration
func tailStack(ctx context.Context, cmd *cobra.Command, stackName string) error {
	cfg, err := loadConfig(ctx, cmd, tailBindings...)
	if err != nil {
		return err
	}

	sinceFlag, _ := cmd.Flags().GetString("since")
	since, err := parseSince(sinceFlag, time.Now())
	if err != nil {
		return err
	}

	formatter, err := newFormatter(cmd, cfg)
	if err != nil {
		return err
	}

	cfOps, err := getCloudFormationOperations(ctx, cfg)
	if err != nil {
		return err
	}

	log.Infof("tailing stack %s every %s", stackName, cfg.Tail.Interval)
	tailer := tail.NewTailer(cfOps, formatter, cmd.OutOrStdout(), tailOptions(cfg, since))
	result, err := tailer.Tail(ctx, stackName)
	if err != nil {
		return err
	}

	log.WithField("polls", result.Polls).
		WithField("status", string(result.Final.ResourceStatus)).
		Debugf("stack %s settled", stackName)
	return nil
}

func tailOptions(cfg *config.Config, since time.Time) tail.Options {
	return tail.Options{
		Interval:      cfg.Tail.Interval,
		Timeout:       cfg.Tail.Timeout,
		MaxPolls:      cfg.Tail.MaxPolls,
		NotFoundGrace: cfg.Tail.NotFoundGrace,
		Since:         since,
	}
}

func init() {
	rootCmd.AddCommand(tailCmd)

	tailCmd.Flags().Duration("interval", config.DefaultInterval, "delay between two polls")
	tailCmd.Flags().Duration("timeout", 0, "give up after this long (0 waits forever)")
	tailCmd.Flags().Int("max-polls", 0, "give up after this many polls (0 means no limit)")
	tailCmd.Flags().Duration("not-found-grace", 0, "treat a missing stack as having no events for this long")
	tailCmd.Flags().String("since", "", "ignore events older than a duration ago (e.g. 10m) or an RFC 3339 time")
	tailCmd.Flags().String("format", config.DefaultFormat, "Go template for each event line")
	tailCmd.Flags().Bool("no-color", false, "disable coloured statuses")
}
