// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes text records, with the level
// and message colored according to the capabilities of the output terminal.
// Records below its level are dropped.
type Handler struct {
	text slog.Handler
	out  *termenv.Output
	mu   *sync.Mutex
}

// NewHandler returns a new [Handler] writing to the given writer
// at the given level. A nil level follows [UserLevel].
// Colors are only used if the writer is a terminal that supports them.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = levelVar{}
	}
	out := termenv.NewOutput(w)
	return &Handler{
		text: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: replaceAttr(out),
		}),
		out: out,
		mu:  &sync.Mutex{},
	}
}

// levelVar reads [UserLevel] each time so that changes take effect
// on existing handlers.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.text.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.text.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.text = h.text.WithAttrs(attrs)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.text = h.text.WithGroup(name)
	return &nh
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(out *termenv.Output, level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return out.Color("#e5534b")
	case level >= slog.LevelWarn:
		return out.Color("#c69026")
	case level >= slog.LevelInfo:
		return out.Color("#539bf5")
	default:
		return out.Color("#768390")
	}
}

func replaceAttr(out *termenv.Output) func(groups []string, a slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) > 0 {
			return a
		}
		switch a.Key {
		case slog.TimeKey:
			return slog.Attr{}
		case slog.LevelKey:
			level, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(level.String()).Foreground(LevelColor(out, level)).Bold().String())
		}
		return a
	}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to standard error at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, nil)))
}
