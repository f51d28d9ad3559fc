package editor

import (
	"context"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/search"
)

// LastQuery returns the most recent search query.
func (e *Engine) LastQuery() buffer.Query { return e.lastQuery }

// Find searches synchronously from the cursor, or past the selection, and
// reconciles the result with the selection. It reports whether a match was
// found.
func (e *Engine) Find(q buffer.Query) bool {
	e.lastQuery = q
	r, found := e.buf.Find(q, e.searchOrigin(q))
	e.applyFound(r, found, q.Backward)
	return found
}

// FindAsync starts a background search from the same origin as Find. The
// caller waits on the task and hands it to ApplySearch on the engine's
// goroutine.
// Overlapping searches are not cancelled automatically.
func (e *Engine) FindAsync(ctx context.Context, q buffer.Query) *search.Task {
	e.lastQuery = q
	return e.pool.Submit(ctx, e.buf.Snapshot(), q, e.searchOrigin(q))
}

// searchOrigin is where a search starts. A selection made outside select
// mode is skipped over, so repeated finds step past the current match in
// either direction.
func (e *Engine) searchOrigin(q buffer.Query) buffer.Pos {
	r, ok := e.Selection()
	if !ok || e.selectMode {
		return e.pos
	}
	if q.Backward {
		return r.Start
	}
	return r.End
}

// ApplySearch reconciles a finished task with the cursor. Cancelled,
// unfinished, failed and already applied tasks are ignored and leave all
// state untouched.
func (e *Engine) ApplySearch(t *search.Task) bool {
	if t == nil {
		return false
	}
	if t.Cancelled() {
		e.log.Debug("search completion suppressed", "task", t.ID(), "reason", "cancelled")
		return false
	}
	res, ok := t.Result()
	if !ok {
		e.log.Debug("search completion suppressed", "task", t.ID(), "err", t.Err())
		return false
	}
	if !t.Claim() {
		e.log.Debug("search completion suppressed", "task", t.ID(), "reason", "already applied")
		return false
	}
	if res.Version != e.buf.Version() {
		e.log.Debug("search result from older version", "task", t.ID(), "version", res.Version, "current", e.buf.Version())
	}
	e.applyFound(res.Range, res.Found, res.Query.Backward)
	return true
}

// applyFound selects a match. In select mode the anchor stays and the
// cursor moves to the match end nearer the search direction. A miss
// collapses the selection without moving the cursor.
func (e *Engine) applyFound(r buffer.Range, found bool, backward bool) {
	e.detached = false
	if !found {
		e.setPosition(e.pos, false, false)
	} else {
		r = buffer.NormalizeRange(buffer.Range{Start: e.buf.ClampPos(r.Start), End: e.buf.ClampPos(r.End)})
		switch {
		case e.selectMode && backward:
			e.setPosition(r.Start, true, false)
		case e.selectMode:
			e.setPosition(r.End, true, false)
		case backward:
			e.anchor = r.End
			e.setPosition(r.Start, true, false)
		default:
			e.anchor = r.Start
			e.setPosition(r.End, true, false)
		}
	}
	if e.cfg.Events.SearchApplied != nil {
		e.cfg.Events.SearchApplied(r, found)
	}
	e.AdjustScrollPosition()
}
