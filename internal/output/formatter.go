/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/orien/stacktail/internal/aws"
)

var escapes = strings.NewReplacer(`\t`, "\t", `\n`, "\n")

// Formatter renders stack events as single lines using a Go template with Sprig functions
type Formatter struct {
	tmpl   *template.Template
	styles *Styles
}

// lineData is what a line template sees
type lineData struct {
	EventId              string
	StackName            string
	LogicalResourceId    string
	PhysicalResourceId   string
	ResourceType         string
	ResourceStatus       string
	ResourceStatusReason string
	Timestamp            time.Time
}

// NewFormatter parses format, expanding the \t and \n escapes typed on a command line.
// A nil styles value disables colour.
func NewFormatter(format string, styles *Styles) (*Formatter, error) {
	if styles == nil {
		styles = NewStyles(false)
	}

	tmpl, err := template.New("event").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(escapes.Replace(format))
	if err != nil {
		return nil, fmt.Errorf("failed to parse event format: %w", err)
	}

	return &Formatter{tmpl: tmpl, styles: styles}, nil
}

// Line renders the uncoloured line for an event. Lines are also the identity
// used to recognise events already printed.
func (f *Formatter) Line(event aws.StackEvent) (string, error) {
	return f.execute(newLineData(event, string(event.ResourceStatus)))
}

// Styled renders the line for display, colouring the status when enabled
func (f *Formatter) Styled(event aws.StackEvent) (string, error) {
	if !f.styles.UseColour {
		return f.Line(event)
	}
	return f.execute(newLineData(event, f.styles.Status(event.ResourceStatus)))
}

func (f *Formatter) execute(data lineData) (string, error) {
	var buf bytes.Buffer
	if err := f.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render event: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func newLineData(event aws.StackEvent, status string) lineData {
	return lineData{
		EventId:              event.EventId,
		StackName:            event.StackName,
		LogicalResourceId:    event.LogicalResourceId,
		PhysicalResourceId:   event.PhysicalResourceId,
		ResourceType:         event.ResourceType,
		ResourceStatus:       status,
		ResourceStatusReason: event.ResourceStatusReason,
		Timestamp:            event.Timestamp,
	}
}
