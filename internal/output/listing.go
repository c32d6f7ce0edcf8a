/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/orien/stacktail/internal/aws"
)

// WriteEvents writes a one-shot event listing in the requested output type:
// text (one formatted line per event), json or yaml.
func WriteEvents(w io.Writer, events []aws.StackEvent, outputType string, f *Formatter) error {
	switch outputType {
	case "", "text":
		for _, event := range events {
			line, err := f.Styled(event)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("failed to write event: %w", err)
			}
		}
		return nil

	case "json":
		data, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode events as JSON: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("failed to write events: %w", err)
		}
		return nil

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(events); err != nil {
			return fmt.Errorf("failed to encode events as YAML: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unsupported output type %q", outputType)
	}
}
