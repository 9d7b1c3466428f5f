package segcache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ferrovia/breachpath/segment"
)

// DefaultPollInterval is used when fsnotify is unavailable and no
// WithPollInterval option overrides it.
const DefaultPollInterval = 2 * time.Second

// ReadyWatcher notifies a caller as finalized Paths_*.txt artifacts appear
// in a cache's root directory, so a coordinator resuming against a
// directory another process is still populating can react to newly ready
// keys instead of busy-polling os.Stat.
type ReadyWatcher struct {
	dir          string
	pollInterval time.Duration
	onReady      func(segment.SegmentKey)
	onError      func(error)
	forcePoll    bool
}

// WatchOption configures a ReadyWatcher.
type WatchOption func(*ReadyWatcher)

// WithPollInterval sets the polling interval used when fsnotify is
// unavailable.
func WithPollInterval(d time.Duration) WatchOption {
	return func(w *ReadyWatcher) { w.pollInterval = d }
}

// WithOnReady sets the callback invoked once per newly finalized key.
func WithOnReady(fn func(segment.SegmentKey)) WatchOption {
	return func(w *ReadyWatcher) { w.onReady = fn }
}

// WithOnError sets the callback invoked on watch errors; defaults to a
// no-op.
func WithOnError(fn func(error)) WatchOption {
	return func(w *ReadyWatcher) { w.onError = fn }
}

// WithForcePoll forces polling mode even when fsnotify is available, for
// filesystems where inotify-style events are unreliable.
func WithForcePoll(force bool) WatchOption {
	return func(w *ReadyWatcher) { w.forcePoll = force }
}

// NewReadyWatcher builds a ReadyWatcher over dir. Call Run to start it.
func NewReadyWatcher(dir string, opts ...WatchOption) *ReadyWatcher {
	w := &ReadyWatcher{
		dir:          dir,
		pollInterval: DefaultPollInterval,
		onReady:      func(segment.SegmentKey) {},
		onError:      func(error) {},
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run blocks until ctx is canceled, invoking onReady once per distinct
// finalized key it observes. It prefers fsnotify and falls back to polling
// if the watcher cannot be created or dir cannot be added to it.
func (w *ReadyWatcher) Run(ctx context.Context) error {
	seen := make(map[string]bool)
	w.scanOnce(seen)

	if !w.forcePoll {
		fsw, err := fsnotify.NewWatcher()
		if err == nil {
			defer fsw.Close()
			if err := fsw.Add(w.dir); err == nil {
				return w.runFsnotify(ctx, fsw, seen)
			}
		}
	}

	return w.runPolling(ctx, seen)
}

func (w *ReadyWatcher) runFsnotify(ctx context.Context, fsw *fsnotify.Watcher, seen map[string]bool) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Rename) != 0 {
				w.notifyIfFinalized(filepath.Base(ev.Name), seen)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.onError(err)
		}
	}
}

func (w *ReadyWatcher) runPolling(ctx context.Context, seen map[string]bool) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.scanOnce(seen)
		}
	}
}

func (w *ReadyWatcher) scanOnce(seen map[string]bool) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.onError(err)

		return
	}
	for _, e := range entries {
		w.notifyIfFinalized(e.Name(), seen)
	}
}

func (w *ReadyWatcher) notifyIfFinalized(name string, seen map[string]bool) {
	if !strings.HasPrefix(name, "Paths_") || !strings.HasSuffix(name, ".txt") {
		return
	}
	encodedKey := strings.TrimSuffix(strings.TrimPrefix(name, "Paths_"), ".txt")
	if seen[encodedKey] {
		return
	}

	key, err := decodeKey(encodedKey)
	if err != nil {
		return
	}

	if _, err := os.Stat(filepath.Join(w.dir, "PathData_"+encodedKey+".txt")); err != nil {
		return
	}

	seen[encodedKey] = true
	w.onReady(key)
}
