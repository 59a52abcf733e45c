// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Handler is a [slog.Handler] whose enabled level tracks [UserLevel]
// dynamically, writing compact single-line records with colored level
// tags (see [LevelColor]).
type Handler struct {
	w io.Writer

	// attrs is the preformatted output of attrs added via [Handler.WithAttrs],
	// captured with the group prefix in effect at the time they were added.
	attrs string

	groups []string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(LevelColor(r.Level, strings.ToLower(r.Level.String())+":"))
	b.WriteString(" ")
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	prefix := h.prefix()
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s%s=%v", prefix, a.Key, a.Value)
		return true
	})
	b.WriteString("\n")
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	prefix := h.prefix()
	for _, a := range attrs {
		fmt.Fprintf(&b, " %s%s=%v", prefix, a.Key, a.Value)
	}
	return &Handler{w: h.w, attrs: b.String(), groups: h.groups}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	gs := h.groups[:len(h.groups):len(h.groups)]
	return &Handler{w: h.w, attrs: h.attrs, groups: append(gs, name)}
}

func (h *Handler) prefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to [os.Stderr]. It is called in an init function, so it only
// needs to be called again if the default logger has been changed.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func init() {
	SetDefaultLogger()
}
