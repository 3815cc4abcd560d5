// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestNewLogger(t *testing.T) {
	var b bytes.Buffer
	l := NewLogger(&b, slog.LevelInfo)
	l.Debug("this is debug")
	l.Info("this is info", "tone", 50.0)
	l.Warn("this is warn")

	out := b.String()
	assert.NotContains(t, out, "this is debug")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "tone=50")
	assert.Contains(t, out, "level=WARN")
	// a buffer is not a terminal
	assert.NotContains(t, out, "\x1b[")
}

func TestDefaultLogger(t *testing.T) {
	prev, prevDefault := UserLevel, slog.Default()
	defer func() {
		UserLevel = prev
		slog.SetDefault(prevDefault)
	}()

	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))

	UserLevel = slog.LevelError
	SetDefaultLogger()
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, "1", levelColor(slog.LevelError))
	assert.Equal(t, "3", levelColor(slog.LevelWarn))
	assert.Equal(t, "2", levelColor(slog.LevelInfo))
	assert.Equal(t, "6", levelColor(slog.LevelDebug))
}
