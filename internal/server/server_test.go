package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/builder"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLiveReloadWrapper_InjectsScriptIntoHTML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html><body><p>hi</p></body></html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644))

	srv := httptest.NewServer(liveReloadWrapper(http.FileServer(http.Dir(dir))))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "<p>hi</p>")
	assert.Contains(t, string(body), `new WebSocket(`)
	assert.True(t, strings.HasSuffix(string(body), "</script>\n</body></html>"))
	assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get("Cache-Control"))

	resp, err = http.Get(srv.URL + "/style.css")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(body))
}

func TestLiveReloadWrapper_NotFoundUntouched(t *testing.T) {
	srv := httptest.NewServer(liveReloadWrapper(http.FileServer(http.Dir(t.TempDir()))))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/missing.html")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotContains(t, string(body), "WebSocket")
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	hub := newHub(discardLogger())
	srv := httptest.NewServer(http.HandlerFunc(hub.serveWs))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.broadcastMessage([]byte("reload"))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "reload", string(msg))

	hub.closeAll()
	assert.Zero(t, hub.count())
}

func TestWatchForChanges_DebouncesRebuilds(t *testing.T) {
	dir := t.TempDir()
	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()
	require.NoError(t, addWatches(watcher, []string{dir, filepath.Join(dir, "missing")}, discardLogger()))

	var builds atomic.Int32
	build := func(ctx context.Context, opts builder.BuildOptions) error {
		assert.False(t, opts.CleanDestination)
		builds.Add(1)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watchForChanges(ctx, watcher, newHub(discardLogger()), build, builder.BuildOptions{}, discardLogger())
		close(done)
	}()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "post.md"), []byte(strings.Repeat("x", i+1)), 0o644))
	}

	require.Eventually(t, func() bool { return builds.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(2 * debounceDuration)
	assert.Equal(t, int32(1), builds.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher loop did not stop")
	}
}

func TestRun_InitialBuildFailure(t *testing.T) {
	err := Run(context.Background(), Options{
		Dir:    t.TempDir(),
		Logger: discardLogger(),
		Build: func(ctx context.Context, opts builder.BuildOptions) error {
			assert.True(t, opts.CleanDestination)
			return assert.AnError
		},
	})
	assert.ErrorIs(t, err, assert.AnError)
}
