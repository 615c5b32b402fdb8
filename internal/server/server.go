// internal/server/server.go
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"folio/internal/builder"
)

const (
	debounceDuration = 300 * time.Millisecond
	shutdownTimeout  = 5 * time.Second
)

// BuildFunc rebuilds the site into the served directory.
type BuildFunc func(ctx context.Context, opts builder.BuildOptions) error

// Options configure the preview server.
type Options struct {
	Port int
	// Dir is the directory served over HTTP.
	Dir string
	// Watch lists the files and directories that trigger a rebuild.
	Watch  []string
	Build  BuildFunc
	Logger *slog.Logger
	// BuildOptions are passed to every build; the first build also cleans
	// the destination.
	BuildOptions builder.BuildOptions
}

// Run builds the site, serves it with live reload and rebuilds on changes
// until ctx is canceled.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	initial := opts.BuildOptions
	initial.CleanDestination = true
	if err := opts.Build(ctx, initial); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	hub := newHub(logger)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatches(watcher, opts.Watch, logger); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.serveWs)
	mux.Handle("/", liveReloadWrapper(http.FileServer(http.Dir(opts.Dir))))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rebuild := opts.BuildOptions
		rebuild.CleanDestination = false
		watchForChanges(ctx, watcher, hub, opts.Build, rebuild, logger)
		return nil
	})
	g.Go(func() error {
		fmt.Printf("Serving site on http://localhost%s\n", srv.Addr)
		fmt.Println("Press Ctrl+C to stop")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		hub.closeAll()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// addWatches registers every directory under the given paths. Files are
// watched through their parent directory so editors that save by renaming
// still trigger events.
func addWatches(watcher *fsnotify.Watcher, paths []string, logger *slog.Logger) error {
	watched := make(map[string]bool)
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if watched[dir] {
			return
		}
		if err := watcher.Add(dir); err != nil {
			logger.Warn("error adding watch", "dir", dir, "error", err)
			return
		}
		logger.Debug("watching directory", "dir", dir)
		watched[dir] = true
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("could not stat path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(filepath.Dir(path))
			continue
		}
		if err := filepath.Walk(path, func(walkPath string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				add(walkPath)
			}
			return nil
		}); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
	}
	return nil
}

func watchForChanges(ctx context.Context, watcher *fsnotify.Watcher, hub *Hub, build BuildFunc, opts builder.BuildOptions, logger *slog.Logger) {
	timer := time.NewTimer(debounceDuration)
	timer.Stop()
	var changed string

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			changed = event.Name
			timer.Reset(debounceDuration)
		case <-timer.C:
			logger.Info("change detected, rebuilding", "path", changed)
			if err := build(ctx, opts); err != nil {
				logger.Error("error rebuilding site", "error", err)
				continue
			}
			logger.Info("site rebuilt, triggering reload", "clients", hub.count())
			hub.broadcastMessage([]byte("reload"))
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
