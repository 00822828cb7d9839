package judge

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/solver"
)

// syncBuffer lets the test read reports written from the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatcherStartReportsExpiredContext(t *testing.T) {
	t.Parallel()
	s, ok := solver.Lookup("2110A")
	require.True(t, ok)

	w, err := NewWatcher(s, "2110A", t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = w.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWatcherRejudgesOnWrite(t *testing.T) {
	t.Parallel()
	s, ok := solver.Lookup("2110A")
	require.True(t, ok)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.txt"), []byte("1\n3\n1 2 3\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "out.txt"), []byte("1\n"), 0o644))

	w, err := NewWatcher(s, "2110A", dir, zap.NewNop())
	require.NoError(t, err)
	var out syncBuffer
	w.out = &out

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// let the watch registration settle before touching the file
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.txt"), []byte("1\n3\n1 2 3\n"), 0o644))

	require.Eventually(t, func() bool {
		return len(out.String()) > 0
	}, 3*time.Second, 50*time.Millisecond)
	assert.Contains(t, out.String(), "2110A")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
