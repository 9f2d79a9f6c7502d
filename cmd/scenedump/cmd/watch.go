// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"cogentcore.org/scene/base/errors"
)

// Watch calls the given function, and then calls it again each time
// the given file changes, until the context is done. Changes within
// the debounce interval of each other are processed once. Errors from
// the function are logged and do not stop watching.
func Watch(ctx context.Context, filename string, debounce time.Duration, fun func() error) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Errorf("cmd.Watch: %w", err)
	}
	defer watcher.Close()
	// editors often replace files, so the directory is watched
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Errorf("cmd.Watch %q: %w", filename, err)
	}
	errors.Log(fun())

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.After(debounce)
			}
		case <-pending:
			pending = nil
			slog.Info("cmd.Watch: file changed", "file", filename)
			errors.Log(fun())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("cmd.Watch", "err", err)
		}
	}
}
