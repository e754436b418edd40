package host

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/rotary"
)

const defaultDebounce = 100 * time.Millisecond

// ConfigWatcher reloads a keyboard config file whenever it is written.
// Parsed configs are handed over on Updates; the caller applies them from its
// own goroutine, normally the game loop. Only the newest pending config is
// kept.
type ConfigWatcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	updates  chan rotary.Config
	errs     chan error

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	timer *time.Timer
}

// WatchConfig starts watching path. The directory containing path is
// watched so that editors which replace the file are noticed. Watching stops
// when ctx is done or Close is called.
func WatchConfig(ctx context.Context, path string) (*ConfigWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch directory: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &ConfigWatcher{
		path:     path,
		debounce: defaultDebounce,
		watcher:  fw,
		updates:  make(chan rotary.Config, 1),
		errs:     make(chan error, 1),
		cancel:   cancel,
	}
	w.wg.Add(1)
	go w.loop(ctx)
	return w, nil
}

// Updates delivers each successfully parsed and validated config.
func (w *ConfigWatcher) Updates() <-chan rotary.Config {
	return w.updates
}

// Errors delivers read, parse and validation failures. Errors are dropped
// when the previous one has not been received.
func (w *ConfigWatcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching and waits for the watch goroutine to exit.
func (w *ConfigWatcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return err
}

func (w *ConfigWatcher) loop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		}
	}
}

// schedule restarts the debounce timer; a burst of writes reloads once.
func (w *ConfigWatcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if ctx.Err() == nil {
			w.reload()
		}
	})
}

func (w *ConfigWatcher) reload() {
	cfg, err := rotary.LoadConfig(w.path)
	if err != nil {
		w.sendErr(fmt.Errorf("reload config: %w", err))
		return
	}
	for {
		select {
		case w.updates <- cfg:
			return
		default:
		}
		// Replace the stale pending config.
		select {
		case <-w.updates:
		default:
		}
	}
}

func (w *ConfigWatcher) sendErr(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
