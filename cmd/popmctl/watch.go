package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch DIR",
		Short: "Re-lint documents as they change",
		Long: `Watch monitors a directory and re-lints any document that is written
or created there, once the file has been quiet for the debounce window.
Stop with SIGINT or SIGTERM.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close() //nolint:errcheck // Best effort close

			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				cancel()
			}()

			log.Info().Str("dir", dir).Dur("debounce", cfg.Debounce).Msg("watching for document changes")

			relint := newRelinter(cfg.Debounce, func(path string) {
				lintFile(path).report()
			})
			for {
				select {
				case <-ctx.Done():
					log.Info().Msg("received signal, stopping...")
					return nil

				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if skipPath(event.Name) {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					relint.schedule(event.Name)

				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					log.Error().Err(err).Msg("watcher error")
				}
			}
		},
	}
}

// skipPath filters events for dotfiles and in-flight temp files.
func skipPath(name string) bool {
	base := filepath.Base(name)
	return strings.HasPrefix(base, ".") || strings.HasSuffix(base, ".tmp")
}

// relinter coalesces rapid events per path and runs the lint callback
// once the file has been quiet for the debounce window.
type relinter struct {
	delay time.Duration
	lint  func(path string)

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func newRelinter(delay time.Duration, lint func(path string)) *relinter {
	return &relinter{
		delay:   delay,
		lint:    lint,
		pending: make(map[string]*time.Timer),
	}
}

func (r *relinter) schedule(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.pending[path]; ok {
		t.Stop()
	}
	r.pending[path] = time.AfterFunc(r.delay, func() {
		r.mu.Lock()
		delete(r.pending, path)
		r.mu.Unlock()

		r.lint(path)
	})
}
