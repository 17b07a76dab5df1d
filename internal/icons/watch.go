// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is how long Watch waits after the last change before
// resizing, so that a burst of writes results in a single run.
const debounceDelay = 250 * time.Millisecond

// watchReadyHook is called when Watch has done the initial resize and started
// watching. Used in tests.
var watchReadyHook func()

// Watch resizes icons based on the provided [Config], and then does it again
// every time the input image changes, until ctx is canceled.
//
// Failures are reported through c.Logf and don't stop watching.
func Watch(ctx context.Context, c *Config) error {
	c.setDefaults()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Editors often replace the file instead of writing to it, so watch the
	// whole directory.
	if err := watcher.Add(filepath.Dir(c.Input)); err != nil {
		return err
	}

	logger.Info(ctx, "performing an initial resize")
	run(ctx, c)

	logger.Info(ctx, "started watching for new changes", slog.String("input", c.Input))
	if watchReadyHook != nil {
		watchReadyHook()
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	input := filepath.Clean(c.Input)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != input || !shouldResize(event.Name, event.Op) {
				continue
			}
			logger.Info(ctx, "detected change, scheduling resize",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			run(ctx, c)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "watcher error", slog.Any("err", err))
		case <-ctx.Done():
			logger.Info(ctx, "stopped watching")
			return nil
		}
	}
}

func run(ctx context.Context, c *Config) {
	if err := Resize(ctx, c); err != nil {
		// Shutting down in the middle of a run is not a failure.
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return
		}
		logger.Error(ctx, "failed to resize icons", slog.Any("err", err))
		c.Logf("Error: %v", err)
	}
}

// Adapted from
// https://github.com/brandur/modulir/blob/1ff912fdc45a79cb4d8d9f199d213ae9c3598cbd/watch.go#L201.
func shouldResize(path string, op fsnotify.Op) bool {
	base := filepath.Base(path)

	// Mac OS' worst mistake.
	if base == ".DS_Store" {
		return false
	}

	// Vim creates this temporary file to see whether it can write into a target
	// directory.
	if base == "4913" {
		return false
	}

	// Ignore files that look like Vim backups.
	if strings.HasSuffix(base, "~") {
		return false
	}

	// Removal leaves nothing to resize, and a rename is followed by a create.
	return op&(fsnotify.Create|fsnotify.Write) != 0
}
