package search

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/iw2rmb/quill/buffer"
)

// ErrCancelled is reported by Task.Err for tasks cancelled before they
// finished.
var ErrCancelled = errors.New("search: cancelled")

// Result is the outcome of a finished search.
type Result struct {
	Query buffer.Query
	From  buffer.Pos
	Range buffer.Range
	Found bool
	// Version is the buffer version the search ran against.
	Version uint64
}

// Task is one submitted search.
type Task struct {
	id     string
	query  buffer.Query
	from   buffer.Pos
	cancel context.CancelFunc
	done   chan struct{}

	cancelled atomic.Bool
	claimed   atomic.Bool

	mu  sync.Mutex
	res Result
	err error
}

func newTask(cancel context.CancelFunc, q buffer.Query, from buffer.Pos) *Task {
	return &Task{
		id:     uuid.NewString(),
		query:  q,
		from:   from,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func (t *Task) ID() string          { return t.id }
func (t *Task) Query() buffer.Query { return t.query }

// Cancel stops the search. A cancelled task never yields a result, even if
// it had already finished.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled.Store(true)
	t.cancel()
}

func (t *Task) Cancelled() bool { return t != nil && t.cancelled.Load() }

// Done is closed once the search has stopped, successfully or not.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the task is done or ctx ends.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Result returns the finished result. ok is false while the task is
// running, after cancellation and when the search failed.
func (t *Task) Result() (Result, bool) {
	if t == nil || t.Cancelled() {
		return Result{}, false
	}
	select {
	case <-t.done:
	default:
		return Result{}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return Result{}, false
	}
	return t.res, true
}

// Err returns ErrCancelled for cancelled tasks, the search error for failed
// ones and nil otherwise.
func (t *Task) Err() error {
	if t.Cancelled() {
		return ErrCancelled
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Claim reports true exactly once per task. Consumers call it before
// applying a result so that a completion is delivered at most once.
func (t *Task) Claim() bool {
	if t == nil {
		return false
	}
	return t.claimed.CompareAndSwap(false, true)
}

func (t *Task) finish(res Result, err error) {
	t.mu.Lock()
	t.res = res
	t.err = err
	t.mu.Unlock()
	close(t.done)
}
