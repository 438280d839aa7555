package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settleDelay lets editors that write in several steps finish saving.
const settleDelay = 50 * time.Millisecond

// watchFile calls onChange every time path is written, created or renamed
// into place, until ctx is cancelled. The directory is watched rather than
// the file so that editors replacing the file on save are still seen.
func watchFile(ctx context.Context, path string, log *zap.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to create file watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("unable to watch %s: %w", filepath.Dir(target), err)
	}
	log.Info("Watching for changes", zap.String("file", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("Document changed", zap.String("file", target), zap.Stringer("op", event.Op))

			// Collapse the burst of events a single save produces.
			timer := time.NewTimer(settleDelay)
		drain:
			for {
				select {
				case <-watcher.Events:
				case <-timer.C:
					break drain
				case <-ctx.Done():
					timer.Stop()
					return nil
				}
			}
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("File watcher error", zap.Error(err))
		}
	}
}
