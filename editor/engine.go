package editor

import (
	"log/slog"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/layout"
	"github.com/iw2rmb/quill/search"
)

// Engine keeps a cursor, a selection and a viewport consistent with a
// buffer. All methods must be called from one goroutine.
type Engine struct {
	buf    *buffer.Buffer
	cfg    Config
	shaper layout.Shaper
	log    *slog.Logger
	pool   *search.Pool

	wrap          layout.WrapMode
	tabWidth      int
	width, height int

	pos, anchor buffer.Pos
	// stickyCell is the cell within the visual row that vertical moves aim
	// for; -1 when unset.
	stickyCell int
	selectMode bool
	overwrite  bool

	scrollColumn int
	scrollLine   *buffer.LineMarker
	scrollFine   int
	detached     bool

	group     *buffer.UndoGroup
	lastQuery buffer.Query

	// editing is set while the engine mutates the buffer itself.
	editing     bool
	unsubscribe func()

	shapes shapeCache
	last   notifyState
}

type notifyState struct {
	cursor   CursorEvent
	scroll   ScrollPosition
	rng      ScrollRange
	modified bool
	commands CommandState
}

// NewEngine creates an engine over buf with the cursor at the document
// start. cfg.Text is ignored.
func NewEngine(buf *buffer.Buffer, cfg Config) *Engine {
	cfg = cfg.normalized()
	e := &Engine{
		buf:        buf,
		cfg:        cfg,
		shaper:     cfg.Shaper,
		log:        cfg.Logger,
		pool:       search.NewPool(cfg.SearchWorkers, cfg.Logger),
		wrap:       cfg.WrapMode,
		tabWidth:   cfg.TabWidth,
		stickyCell: -1,
		scrollLine: buf.NewLineMarker(0),
	}
	e.scrollLine.OnMove(func(oldRow, newRow int) {
		if !e.editing {
			e.log.Debug("scroll line moved by external edit", "from", oldRow, "to", newRow)
		}
	})
	e.unsubscribe = buf.Subscribe(e.onChange)
	e.last = e.state()
	return e
}

// Close detaches the engine from its buffer.
func (e *Engine) Close() {
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	e.closeGroup()
	e.scrollLine.Release()
}

func (e *Engine) Buffer() *buffer.Buffer    { return e.buf }
func (e *Engine) WrapMode() layout.WrapMode { return e.wrap }
func (e *Engine) TabWidth() int             { return e.tabWidth }
func (e *Engine) ViewSize() (int, int)      { return e.width, e.height }
func (e *Engine) ReadOnly() bool            { return e.cfg.ReadOnly }
func (e *Engine) SelectMode() bool          { return e.selectMode }
func (e *Engine) Overwrite() bool           { return e.overwrite }
func (e *Engine) Detached() bool            { return e.detached }
func (e *Engine) Modified() bool            { return e.buf.Modified() }

// MarkClean records the current document as saved.
func (e *Engine) MarkClean() {
	e.buf.MarkClean()
	e.notify()
}

// SetReadOnly toggles whether commands may mutate the buffer.
func (e *Engine) SetReadOnly(ro bool) {
	e.cfg.ReadOnly = ro
	e.notify()
}

// SetClipboard replaces the clipboard used by copy, cut and paste.
func (e *Engine) SetClipboard(c Clipboard) {
	e.cfg.Clipboard = c
	e.notify()
}

// SetEvents replaces the notification callbacks.
func (e *Engine) SetEvents(ev Events) { e.cfg.Events = ev }

// SetHooks replaces the optional host hooks.
func (e *Engine) SetHooks(h Hooks) { e.cfg.Hooks = h }

// onChange keeps the cursor attached to its text when something other than
// the engine edits the buffer.
func (e *Engine) onChange(ch buffer.Change) {
	if e.editing {
		return
	}
	for _, ed := range ch.AppliedEdits {
		e.pos = shiftPos(e.pos, ed)
		e.anchor = shiftPos(e.anchor, ed)
	}
	e.pos = e.buf.ClampPos(e.pos)
	e.anchor = e.buf.ClampPos(e.anchor)
	e.log.Debug("external change", "source", ch.Source, "version", ch.VersionAfter, "cursor", e.pos)
	e.AdjustScrollPosition()
}

// shiftPos maps p across one applied edit. Positions inside the replaced
// range move to the end of the new text.
func shiftPos(p buffer.Pos, ed buffer.AppliedEdit) buffer.Pos {
	before, after := ed.RangeBefore, ed.RangeAfter
	if buffer.ComparePos(p, before.Start) <= 0 {
		return p
	}
	if buffer.ComparePos(p, before.End) < 0 {
		return after.End
	}
	if p.Row == before.End.Row {
		return buffer.Pos{Row: after.End.Row, GraphemeCol: after.End.GraphemeCol + p.GraphemeCol - before.End.GraphemeCol}
	}
	return buffer.Pos{Row: p.Row + after.End.Row - before.End.Row, GraphemeCol: p.GraphemeCol}
}

// mutate runs fn as an engine-owned edit. The scroll line is pinned across
// the edit so that lines collapsing onto an earlier row do not drag the
// viewport along.
func (e *Engine) mutate(fn func()) {
	pinned := e.scrollLine.Row()
	e.editing = true
	defer func() {
		e.editing = false
		e.scrollLine.Set(pinned)
	}()
	fn()
}

func (e *Engine) cursorEvent() CursorEvent {
	line := e.shapeUnwrapped(e.pos.Row)
	return CursorEvent{
		Row:       e.pos.Row,
		Col:       e.pos.GraphemeCol,
		VisualCol: line.CellForCol(e.pos.GraphemeCol),
		ByteCol:   e.buf.ByteCol(e.pos),
	}
}

// CommandState reports which commands are currently applicable.
func (e *Engine) CommandState() CommandState {
	return CommandState{
		CanUndo:      !e.cfg.ReadOnly && e.buf.CanUndo(),
		CanRedo:      !e.cfg.ReadOnly && e.buf.CanRedo(),
		HasSelection: e.HasSelection(),
		CanPaste:     !e.cfg.ReadOnly && e.cfg.Clipboard != nil,
		ReadOnly:     e.cfg.ReadOnly,
	}
}

func (e *Engine) state() notifyState {
	return notifyState{
		cursor:   e.cursorEvent(),
		scroll:   e.ScrollPosition(),
		rng:      e.ScrollRange(),
		modified: e.buf.Modified(),
		commands: e.CommandState(),
	}
}

// notify fires every callback whose value changed since the last call.
func (e *Engine) notify() {
	ev := e.cfg.Events
	cur := e.state()
	prev := e.last
	e.last = cur

	if cur.cursor != prev.cursor && ev.CursorPositionChanged != nil {
		ev.CursorPositionChanged(cur.cursor)
	}
	if cur.scroll != prev.scroll && ev.ScrollPositionChanged != nil {
		ev.ScrollPositionChanged(cur.scroll)
	}
	if cur.rng != prev.rng && ev.ScrollRangeChanged != nil {
		ev.ScrollRangeChanged(cur.rng)
	}
	if cur.modified != prev.modified && ev.ModifiedChanged != nil {
		ev.ModifiedChanged(cur.modified)
	}
	if cur.commands != prev.commands && e.cfg.Hooks != nil {
		e.cfg.Hooks.UpdateCommands(cur.commands)
	}
}
