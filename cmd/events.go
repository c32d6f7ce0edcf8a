/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orien/stacktail/internal/config"
	"github.com/orien/stacktail/internal/output"
)

var eventsBindings = []flagBinding{
	{key: "output.type", flag: "output"},
	{key: "output.format", flag: "format"},
	{key: "output.no_color", flag: "no-color"},
}

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events <stack-name>",
	Short: "List every event of a stack, oldest first",
	Long: `Fetch the complete event log of a CloudFormation stack once and print it.

Text output renders each event with --format. JSON and YAML output emit the
full event records, suitable for further processing.

Examples:
  stacktail events my-app                 # Tab separated event lines
  stacktail events my-app --output json   # Event records as a JSON array
  stacktail events my-app -o yaml         # Event records as a YAML sequence`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return listEvents(cmd.Context(), cmd, args[0])
	},
}

// listEvents prints the named stack's event log in the configured output type
func listEvents(ctx context.Context, cmd *cobra.Command, stackName string) error {
	cfg, err := loadConfig(ctx, cmd, eventsBindings...)
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

	events, err := cfOps.DescribeStackEvents(ctx, stackName)
	if err != nil {
		return fmt.Errorf("failed to list events for stack %s: %w", stackName, err)
	}

	return output.WriteEvents(cmd.OutOrStdout(), events, cfg.Output.Type, formatter)
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringP("output", "o", config.DefaultOutput, "output type: text, json or yaml")
	eventsCmd.Flags().String("format", config.DefaultFormat, "Go template for each event line (text output)")
	eventsCmd.Flags().Bool("no-color", false, "disable coloured statuses")
}
