package judge

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/solver"
)

// Watcher re-judges a problem directory whenever its test files change.
type Watcher struct {
	watcher  *fsnotify.Watcher
	solver   solver.Solver
	id       string
	dir      string
	logger   *zap.Logger
	out      io.Writer
	watching bool
}

func NewWatcher(s solver.Solver, id, dir string, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher: fw,
		solver:  s,
		id:      id,
		dir:     dir,
		logger:  logger,
		out:     os.Stdout,
	}, nil
}

// Start watches the problem directory until the context is cancelled. It
// returns the context's error so callers can tell an interrupt from a
// deadline firing underneath them.
func (w *Watcher) Start(ctx context.Context) error {
	if w.watching {
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}
	w.watching = true
	w.logger.Info("watching for changes", zap.String("dir", w.dir))

	for {
		select {
		case <-ctx.Done():
			w.watching = false
			w.logger.Info("watcher stopping", zap.NamedError("reason", ctx.Err()))
			if err := w.watcher.Close(); err != nil {
				return err
			}
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	name := event.Name
	if !strings.HasSuffix(name, ".txt") {
		return
	}
	// coalesce bursts of writes into one rerun
	time.Sleep(100 * time.Millisecond)

	results, err := Run(ctx, w.solver, w.dir)
	if err != nil {
		w.logger.Error("judge run failed", zap.String("dir", w.dir), zap.Error(err))
		return
	}
	WriteReport(w.out, w.id, results)
}
