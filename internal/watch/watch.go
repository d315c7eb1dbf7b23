// Package watch keeps a render session alive, re-rendering an asset whenever
// its file changes on disk.
package watch

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/fogwise/turntable/internal/logger"
	"github.com/fogwise/turntable/internal/meshutil"
)

// Run renders once immediately, then blocks re-rendering after every change
// to the asset until the watcher fails. The directory is watched rather than
// the file: exporters typically replace the file, which would silently drop
// a watch registered on the file itself.
func Run(assetPath string, maxRetries int, render func() error) error {
	if err := renderWithRetry(render, maxRetries); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(assetPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target, err := filepath.Abs(assetPath)
	if err != nil {
		return err
	}

	logger.Info("watching asset", zap.String("asset", assetPath))
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, _ := filepath.Abs(event.Name)
			if name != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Info("asset changed, re-rendering", zap.String("asset", assetPath))
			if err := renderWithRetry(render, maxRetries); err != nil {
				// Keep watching; the next save may fix it.
				logger.Error("render failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// renderWithRetry retries with backoff: a change event often fires while the
// exporter is still writing, so the first load may see a truncated container.
// A truncated GLB fails to parse; it does not decode into degenerate or
// triangle-free geometry. Those two verdicts describe the asset itself, so
// re-reading the same bytes cannot change them and they are not retried.
func renderWithRetry(render func() error, maxRetries int) error {
	if maxRetries <= 0 {
		maxRetries = 5
	}
	op := func() error {
		err := render()
		if errors.Is(err, meshutil.ErrUnsupportedAsset) || errors.Is(err, meshutil.ErrDegenerateMesh) {
			return backoff.Permanent(err)
		}
		return err
	}
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxInterval = 2 * time.Second
	return backoff.Retry(op, backoff.WithMaxRetries(policy, uint64(maxRetries)))
}
