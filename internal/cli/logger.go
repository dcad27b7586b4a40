// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrBadLogFlag reports an unusable --log-level or --log-format value.
var ErrBadLogFlag = errors.New("cli: bad log flag")

// newLogger builds the tool's logger on w. level takes any slog level name
// (debug, info, warn, error, case-insensitive, with optional offset such as
// "warn+2"); format is text or json. Every record carries component=chemgraph.
// The global slog logger is left alone.
func newLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", level, ErrBadLogFlag)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("--log-format %q: %w", format, ErrBadLogFlag)
	}

	return slog.New(h).With(slog.String("component", "chemgraph")), nil
}
