// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the leveled, colored logging
// used by the scene kernel and its tools, built on [log/slog].
package logx

import "log/slog"

// UserLevel is the lowest [slog.Level] shown by handlers created with a
// nil level, such as the default logger set by [SetDefaultLogger].
// Tools set it from their verbosity flags with [LevelFromFlags].
var UserLevel = slog.LevelInfo

// LevelFromFlags returns the level selected by the verbosity flags:
// vv selects [slog.LevelDebug], v [slog.LevelInfo] and q [slog.LevelError].
// The most verbose flag wins. With no flags it is [slog.LevelWarn].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	}
	return slog.LevelWarn
}
