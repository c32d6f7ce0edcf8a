/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Command docgen writes the markdown CLI reference for stacktail.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/orien/stacktail/cmd"
	"github.com/orien/stacktail/internal/log"
)

const defaultOutputDir = "docs/cli"

func main() {
	log.Init(false)

	outputDir := defaultOutputDir
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}

	if err := generate(cmd.RootCommand(), outputDir); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// generate replaces the markdown files in dir with a fresh reference for root
func generate(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := cleanMarkdown(dir); err != nil {
		return fmt.Errorf("clean output directory: %w", err)
	}

	disableAutoGenTag(root)

	if err := doc.GenMarkdownTreeCustom(root, dir, filePrepender, linkHandler); err != nil {
		return fmt.Errorf("generate markdown documentation: %w", err)
	}
	return nil
}

func cleanMarkdown(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func disableAutoGenTag(c *cobra.Command) {
	c.DisableAutoGenTag = true
	for _, child := range c.Commands() {
		disableAutoGenTag(child)
	}
}

// filePrepender adds a title taken from the command path encoded in the file name
func filePrepender(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return "---\ntitle: " + strings.ReplaceAll(name, "_", " ") + "\n---\n\n"
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ToLower(strings.ReplaceAll(base, " ", "-"))
}
