/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"

	"github.com/orien/stacktail/internal/aws"
)

// Styles contains the styles used to highlight resource statuses
type Styles struct {
	Complete   lipgloss.Style
	Failed     lipgloss.Style
	InProgress lipgloss.Style
	Subtle     lipgloss.Style

	// Whether colours are enabled
	UseColour bool
}

// NewStyles creates a style set. Without colour every style renders its input unchanged.
func NewStyles(useColour bool) *Styles {
	s := &Styles{UseColour: useColour}

	if useColour {
		s.Complete = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")) // ANSI Green

		s.Failed = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")). // ANSI Red
			Bold(true)

		s.InProgress = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // ANSI Yellow

		s.Subtle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")) // Dark Grey
	} else {
		s.Complete = lipgloss.NewStyle()
		s.Failed = lipgloss.NewStyle()
		s.InProgress = lipgloss.NewStyle()
		s.Subtle = lipgloss.NewStyle()
	}

	return s
}

// Status renders a resource status in the colour matching its outcome
func (s *Styles) Status(status aws.StackStatus) string {
	text := string(status)
	if !s.UseColour {
		return text
	}

	switch {
	case status.IsFailure():
		return s.Failed.Render(text)
	case status.IsTerminal():
		return s.Complete.Render(text)
	case strings.HasSuffix(text, "_IN_PROGRESS"):
		return s.InProgress.Render(text)
	default:
		return s.Subtle.Render(text)
	}
}

// ColourEnabled decides whether output written to w should be coloured.
// NO_COLOR and the no-color option always win; otherwise only terminals get colour.
func ColourEnabled(w io.Writer, noColour bool) bool {
	if noColour || os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
