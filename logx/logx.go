// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a simple, user-level-filtered wrapper around
// [log/slog], with colored level tags on capable terminals.
package logx

import (
	"log/slog"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown. It is typically set from command line flags
// via [LevelFromFlags]. The default user verbosity level is
// [slog.LevelWarn], or [slog.LevelDebug] under the debug build tag and
// [slog.LevelError] under the release build tag.
var UserLevel = defaultUserLevel

// UseColor is whether to use color in log messages. It is on by default.
var UseColor = true

// Aliases for the [slog.Level] values, for easy setting of [UserLevel].
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// colorProfile is the termenv color profile of the output terminal.
var colorProfile = termenv.ColorProfile()

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [Debug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ApplyColor applies the given color to the given string and returns
// the resulting string. If [UseColor] is false, it returns the string
// unchanged.
func ApplyColor(clr termenv.Color, str string) string {
	if !UseColor {
		return str
	}
	return termenv.String(str).Foreground(clr).String()
}

// LevelColor applies the color conventionally associated with the given
// level to the given string: magenta for debug, blue for info, yellow
// for warn, and red for error.
func LevelColor(level slog.Level, str string) string {
	var clr termenv.Color
	switch level {
	case slog.LevelDebug:
		clr = colorProfile.Color("5")
	case slog.LevelInfo:
		clr = colorProfile.Color("4")
	case slog.LevelWarn:
		clr = colorProfile.Color("3")
	case slog.LevelError:
		clr = colorProfile.Color("1")
	default:
		return str
	}
	return ApplyColor(clr, str)
}
