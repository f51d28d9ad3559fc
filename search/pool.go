package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/semaphore"

	"github.com/iw2rmb/quill/buffer"
)

const DefaultWorkers = 2

// Pool runs searches on background goroutines, at most Workers at a time.
type Pool struct {
	sem     *semaphore.Weighted
	workers int
	log     *slog.Logger
}

// NewPool creates a pool. workers <= 0 selects DefaultWorkers. A nil logger
// discards output.
func NewPool(workers int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pool{
		sem:     semaphore.NewWeighted(int64(workers)),
		workers: workers,
		log:     logger,
	}
}

func (p *Pool) Workers() int { return p.workers }

// Submit starts searching snap for q from the given position. The task is
// cancelled when ctx ends.
func (p *Pool) Submit(ctx context.Context, snap *buffer.Snapshot, q buffer.Query, from buffer.Pos) *Task {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	t := newTask(cancel, q, from)
	go p.run(ctx, t, snap)
	return t
}

func (p *Pool) run(ctx context.Context, t *Task, snap *buffer.Snapshot) {
	defer t.cancel()

	if err := p.sem.Acquire(ctx, 1); err != nil {
		t.finish(Result{}, fmt.Errorf("search %s: waiting for worker: %w", t.id, err))
		return
	}
	defer p.sem.Release(1)

	r, found, err := snap.Find(ctx, t.query, t.from)
	if err != nil {
		p.log.Debug("search stopped", "task", t.id, "err", err)
		t.finish(Result{}, fmt.Errorf("search %s: %w", t.id, err))
		return
	}
	p.log.Debug("search finished", "task", t.id, "found", found, "version", snap.Version())
	t.finish(Result{
		Query:   t.query,
		From:    t.from,
		Range:   r,
		Found:   found,
		Version: snap.Version(),
	}, nil)
}
