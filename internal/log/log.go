/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package log wraps apex/log with the level handling and line format used by stacktail.
// Diagnostics always go to stderr so stdout carries nothing but stack events.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

// EnvLevel names the environment variable that selects the log level
const EnvLevel = "STACKTAIL_LOG"

// Init sets up apex/log with the stacktail handler. The level comes from
// STACKTAIL_LOG and defaults to error; verbose raises it to debug.
func Init(verbose bool) {
	level := ParseLevel(os.Getenv(EnvLevel))
	if verbose && level > log.DebugLevel {
		level = log.DebugLevel
	}
	log.SetHandler(NewHandler(os.Stderr))
	log.SetLevel(level)
}

// ParseLevel maps a level name to an apex level, falling back to error
func ParseLevel(name string) log.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug", "trace":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.ErrorLevel
	}
}

// Handler formats log entries as "<time> <level> <message> key=value..."
type Handler struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// NewHandler creates a handler writing to out
func NewHandler(out io.Writer) *Handler {
	return &Handler{out: out, now: time.Now}
}

// HandleLog implements the log.Handler interface
func (h *Handler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", h.now().Format("2006-01-02 15:04:05"), levelLetter(e.Level), e.Message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(h.out, b.String())
	return err
}

func levelLetter(level log.Level) string {
	switch level {
	case log.DebugLevel:
		return "D"
	case log.InfoLevel:
		return "I"
	case log.WarnLevel:
		return "W"
	case log.ErrorLevel:
		return "E"
	case log.FatalLevel:
		return "F"
	}
	return "?"
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// WithField returns an entry carrying a single field.
func WithField(key string, value interface{}) *log.Entry {
	return log.WithField(key, value)
}
