// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// NewLogger returns a text logger writing to the given writer that shows
// messages at or above the given level. Levels are colored when the
// writer is a terminal that supports color.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	out := termenv.NewOutput(w)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 || out.Profile == termenv.Ascii {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lv.String()).Foreground(out.Color(levelColor(lv))).Bold().String())
			return a
		},
	}))
}

// SetDefaultLogger sets the default logger to a logger writing to
// standard error at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr, UserLevel))
}

// levelColor returns the ANSI color of the given level.
func levelColor(lv slog.Level) string {
	switch {
	case lv >= slog.LevelError:
		return "1"
	case lv >= slog.LevelWarn:
		return "3"
	case lv >= slog.LevelInfo:
		return "2"
	default:
		return "6"
	}
}
