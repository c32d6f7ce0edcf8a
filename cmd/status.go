/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orien/stacktail/internal/output"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <stack-name>",
	Short: "Print the current status of a stack",
	Long: `Print the status CloudFormation currently reports for a stack, such as
CREATE_COMPLETE or UPDATE_ROLLBACK_IN_PROGRESS.

Examples:
  stacktail status my-app`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showStatus(cmd.Context(), cmd, args[0])
	},
}

// showStatus prints the named stack's status
func showStatus(ctx context.Context, cmd *cobra.Command, stackName string) error {
	cfg, err := loadConfig(ctx, cmd, flagBinding{key: "output.no_color", flag: "no-color"})
	if err != nil {
		return err
	}

	cfOps, err := getCloudFormationOperations(ctx, cfg)
	if err != nil {
		return err
	}

	exists, err := cfOps.StackExists(ctx, stackName)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("stack %s does not exist", stackName)
	}

	status, err := cfOps.GetStackStatus(ctx, stackName)
	if err != nil {
		return fmt.Errorf("failed to get status of stack %s: %w", stackName, err)
	}

	out := cmd.OutOrStdout()
	styles := output.NewStyles(output.ColourEnabled(out, cfg.Output.NoColor))
	_, err = fmt.Fprintln(out, styles.Status(status))
	return err
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().Bool("no-color", false, "disable coloured status")
}
