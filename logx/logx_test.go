// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		vv, v, q bool
		level    slog.Level
	}{
		{true, false, false, slog.LevelDebug},
		{true, true, true, slog.LevelDebug},
		{false, true, true, slog.LevelInfo},
		{false, false, true, slog.LevelError},
		{false, false, false, slog.LevelWarn},
	}
	for _, test := range tests {
		assert.Equal(t, test.level, LevelFromFlags(test.vv, test.v, test.q))
	}
}

func TestHandler(t *testing.T) {
	level := UserLevel
	color := UseColor
	defer func() {
		UserLevel = level
		UseColor = color
	}()
	UserLevel = Info
	UseColor = false

	var b strings.Builder
	lg := slog.New(NewHandler(&b))

	lg.Debug("not shown")
	lg.Info("sampled", "count", 471)
	lg.Warn("off domain", "nm", 359.5)

	out := b.String()
	assert.NotContains(t, out, "not shown")
	assert.Contains(t, out, "info: sampled count=471\n")
	assert.Contains(t, out, "warn: off domain nm=359.5\n")
}

func TestHandlerGroups(t *testing.T) {
	level := UserLevel
	color := UseColor
	defer func() {
		UserLevel = level
		UseColor = color
	}()
	UserLevel = Debug
	UseColor = false

	var b strings.Builder
	lg := slog.New(NewHandler(&b)).With("cmd", "blackbody").WithGroup("view")

	lg.Debug("computed", "FL", 1.16754)

	assert.Equal(t, "debug: computed cmd=blackbody view.FL=1.16754\n", b.String())
}

func TestDefaultLogger(t *testing.T) {
	level := UserLevel
	defer func() { UserLevel = level }()
	UserLevel = Debug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
