/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_WritesOnePagePerCommand(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "old_command.md")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o644))
	keep := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(keep, []byte("keep"), 0o644))

	root := &cobra.Command{Use: "tool", Short: "A tool"}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand", Run: func(*cobra.Command, []string) {}})

	require.NoError(t, generate(root, dir))

	assert.NoFileExists(t, stale)
	assert.FileExists(t, keep)
	assert.FileExists(t, filepath.Join(dir, "tool.md"))

	page, err := os.ReadFile(filepath.Join(dir, "tool_sub.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "title: tool sub")
	assert.NotContains(t, string(page), "Auto generated by spf13/cobra")
}

func TestLinkHandler(t *testing.T) {
	assert.Equal(t, "stacktail_tail", linkHandler("stacktail_tail.md"))
	assert.Equal(t, "a-b", linkHandler("A B.md"))
}
