/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/orien/stacktail/internal/log"
	"github.com/orien/stacktail/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stacktail",
	Short: "Follow AWS CloudFormation stack events until the stack settles",
	Long: `Stacktail watches the event log of a CloudFormation stack while an operation runs.

• Streams each new stack event as it appears
• Stops once the stack reaches a terminal *_COMPLETE or *_FAILED state
• Lists a stack's full event history as text, JSON or YAML
• Reports a stack's current status

Configuration is read from stacktail.yaml, STACKTAIL_* environment variables
and command-line flags, with flags taking precedence.`,
	Version: version.Short(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		log.Init(verbose)
	},
}

// RootCommand returns the fully assembled command tree
func RootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "stacktail.yaml", "configuration file; a missing default file is ignored")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile (overrides config)")
	rootCmd.PersistentFlags().StringP("region", "r", "", "AWS region (overrides config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
