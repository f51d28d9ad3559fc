package editor

import (
	"strings"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/grapheme"
)

// ActionKind identifies an editor command.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionInsertText
	ActionNewline
	ActionBackspace
	ActionDelete
	ActionDeleteWordLeft
	ActionDeleteWordRight

	ActionCharacterLeft
	ActionCharacterRight
	ActionWordLeft
	ActionWordRight
	ActionUp
	ActionDown
	ActionPageUp
	ActionPageDown
	ActionStartOfLine
	ActionStartIndentedText
	ActionEndOfLine
	ActionStartOfDocument
	ActionEndOfDocument

	ActionIndent
	ActionOutdent
	ActionCopy
	ActionCut
	ActionPaste
	ActionUndo
	ActionRedo
	ActionSelectAll
	ActionToggleOverwrite
	ActionToggleSelectMode
	ActionFindNext
	ActionFindPrevious
)

// Action is one input intent. Extend asks navigation to extend the
// selection; Text carries inserted text or a search query.
type Action struct {
	Kind   ActionKind
	Extend bool
	Text   string
}

// Do dispatches a. It reports false for ActionNone and unknown kinds.
func (e *Engine) Do(a Action) bool {
	switch a.Kind {
	case ActionInsertText:
		e.InsertText(a.Text)
	case ActionNewline:
		e.InsertText("\n")
	case ActionBackspace:
		e.Backspace()
	case ActionDelete:
		e.DeleteForward()
	case ActionDeleteWordLeft:
		e.DeleteWordLeft()
	case ActionDeleteWordRight:
		e.DeleteWordRight()

	case ActionCharacterLeft:
		e.MoveCharacterLeft(a.Extend)
	case ActionCharacterRight:
		e.MoveCharacterRight(a.Extend)
	case ActionWordLeft:
		e.MoveWordLeft(a.Extend)
	case ActionWordRight:
		e.MoveWordRight(a.Extend)
	case ActionUp:
		e.MoveUp(a.Extend)
	case ActionDown:
		e.MoveDown(a.Extend)
	case ActionPageUp:
		e.PageUp(a.Extend)
	case ActionPageDown:
		e.PageDown(a.Extend)
	case ActionStartOfLine:
		e.MoveToStartOfLine(a.Extend)
	case ActionStartIndentedText:
		e.MoveToStartIndentedText(a.Extend)
	case ActionEndOfLine:
		e.MoveToEndOfLine(a.Extend)
	case ActionStartOfDocument:
		e.MoveToStartOfDocument(a.Extend)
	case ActionEndOfDocument:
		e.MoveToEndOfDocument(a.Extend)

	case ActionIndent:
		e.Indent()
	case ActionOutdent:
		e.Outdent()
	case ActionCopy:
		e.Copy()
	case ActionCut:
		e.Cut()
	case ActionPaste:
		e.Paste()
	case ActionUndo:
		e.Undo()
	case ActionRedo:
		e.Redo()
	case ActionSelectAll:
		e.SelectAll()
	case ActionToggleOverwrite:
		e.ToggleOverwrite()
	case ActionToggleSelectMode:
		e.ToggleSelectMode()
	case ActionFindNext, ActionFindPrevious:
		q := e.lastQuery
		if a.Text != "" {
			q.Text = a.Text
		}
		q.Backward = a.Kind == ActionFindPrevious
		e.Find(q)
	default:
		return false
	}
	return true
}

// BeginUndoGroup opens an undo group for a sequence of programmatic edits.
// The host closes it; Undo and Redo close it if it is still open.
func (e *Engine) BeginUndoGroup() *buffer.UndoGroup {
	e.closeGroup()
	e.group = e.buf.BeginGroup()
	return e.group
}

func (e *Engine) closeGroup() {
	if e.group != nil {
		e.group.Close()
		e.group = nil
	}
}

// afterEdit finishes an engine edit: the cursor lands on pos with the
// selection collapsed and the viewport follows it.
func (e *Engine) afterEdit(pos buffer.Pos) {
	e.detached = false
	e.setPosition(pos, false, false)
	e.AdjustScrollPosition()
}

// InsertText types text at the cursor, replacing the selection. In
// overwrite mode a single typed grapheme replaces the one under the cursor.
func (e *Engine) InsertText(text string) {
	e.SetSelectMode(false)
	e.insert(text, e.overwrite)
}

func (e *Engine) insert(text string, overwrite bool) {
	if e.cfg.ReadOnly || text == "" {
		return
	}
	text = normalizeNewlines(text)

	var next buffer.Pos
	e.mutate(func() {
		if r, ok := e.Selection(); ok {
			next = e.buf.Replace(r, text)
			return
		}
		if overwrite && !strings.Contains(text, "\n") && grapheme.Count(text) == 1 &&
			e.pos.GraphemeCol < e.buf.LineLen(e.pos.Row) {
			next = e.buf.Replace(buffer.Range{Start: e.pos, End: e.buf.NextGrapheme(e.pos)}, text)
			return
		}
		next = e.buf.Insert(e.pos, text)
	})
	e.afterEdit(next)
}

// Backspace deletes the selection or the grapheme before the cursor.
func (e *Engine) Backspace() {
	e.deleteTowards(e.buf.PrevGrapheme)
}

// DeleteForward deletes the selection or the grapheme after the cursor.
func (e *Engine) DeleteForward() {
	e.deleteTowards(e.buf.NextGrapheme)
}

// DeleteWordLeft deletes the selection or back to the previous word start.
func (e *Engine) DeleteWordLeft() {
	e.deleteTowards(e.buf.WordLeft)
}

// DeleteWordRight deletes the selection or up to the next word boundary.
func (e *Engine) DeleteWordRight() {
	e.deleteTowards(e.buf.WordRight)
}

func (e *Engine) deleteTowards(motion func(buffer.Pos) buffer.Pos) {
	e.SetSelectMode(false)
	if e.cfg.ReadOnly {
		return
	}
	r, ok := e.Selection()
	if !ok {
		other := motion(e.pos)
		r = buffer.NormalizeRange(buffer.Range{Start: e.pos, End: other})
	}
	if r.IsEmpty() {
		e.afterEdit(e.pos)
		return
	}
	var next buffer.Pos
	e.mutate(func() { next = e.buf.Delete(r) })
	e.afterEdit(next)
}

// indentUnit returns the text Tab inserts at visual column cell.
func (e *Engine) indentUnit(cell int) string {
	if !e.cfg.TabsAsSpaces {
		return "\t"
	}
	return strings.Repeat(" ", grapheme.TabAdvance(cell, e.tabWidth))
}

// selectedLines returns the lines touched by the selection. A selection
// ending at column 0 of a later line does not include that line.
func (e *Engine) selectedLines() (first, last int, ok bool) {
	r, ok := e.Selection()
	if !ok {
		return e.pos.Row, e.pos.Row, false
	}
	first, last = r.Start.Row, r.End.Row
	if last > first && r.End.GraphemeCol == 0 {
		last--
	}
	return first, last, true
}

// reselectLines selects whole lines first..last keeping the direction the
// selection had before.
func (e *Engine) reselectLines(first, last int, forward bool) {
	start := buffer.Pos{Row: first}
	end := buffer.Pos{Row: last, GraphemeCol: e.buf.LineLen(last)}
	if forward {
		e.anchor, e.pos = start, end
	} else {
		e.anchor, e.pos = end, start
	}
	e.stickyCell = -1
	e.detached = false
	e.AdjustScrollPosition()
}

// Indent inserts an indent at the start of every non-empty selected line,
// or inserts one indent at the cursor when nothing is selected. The
// cursor indent never overwrites.
func (e *Engine) Indent() {
	e.SetSelectMode(false)
	if e.cfg.ReadOnly {
		return
	}
	first, last, ok := e.selectedLines()
	if !ok {
		cell := e.shapeUnwrapped(e.pos.Row).CellForCol(e.pos.GraphemeCol)
		e.insert(e.indentUnit(cell), false)
		return
	}
	forward := buffer.ComparePos(e.anchor, e.pos) <= 0
	unit := e.indentUnit(0)

	e.mutate(func() {
		g := e.buf.BeginGroup()
		defer g.Close()
		for row := first; row <= last; row++ {
			if e.buf.LineLen(row) == 0 {
				continue
			}
			e.buf.Insert(buffer.Pos{Row: row}, unit)
		}
	})
	e.reselectLines(first, last, forward)
}

// Outdent removes one leading tab, or up to TabWidth leading spaces, from
// every selected line or from the cursor line.
func (e *Engine) Outdent() {
	e.SetSelectMode(false)
	if e.cfg.ReadOnly {
		return
	}
	first, last, hadSelection := e.selectedLines()
	forward := buffer.ComparePos(e.anchor, e.pos) <= 0

	removedOnCursorLine := 0
	e.mutate(func() {
		g := e.buf.BeginGroup()
		defer g.Close()
		for row := first; row <= last; row++ {
			n := e.outdentWidth(row)
			if n == 0 {
				continue
			}
			if row == e.pos.Row {
				removedOnCursorLine = n
			}
			e.buf.Delete(buffer.Range{Start: buffer.Pos{Row: row}, End: buffer.Pos{Row: row, GraphemeCol: n}})
		}
	})

	if hadSelection {
		e.reselectLines(first, last, forward)
		return
	}
	col := max(e.pos.GraphemeCol-removedOnCursorLine, 0)
	e.afterEdit(buffer.Pos{Row: e.pos.Row, GraphemeCol: col})
}

// outdentWidth returns how many leading graphemes Outdent removes from row.
func (e *Engine) outdentWidth(row int) int {
	line := grapheme.Split(e.buf.Line(row))
	if len(line) == 0 {
		return 0
	}
	if line[0] == "\t" {
		return 1
	}
	n := 0
	for n < len(line) && n < e.tabWidth && line[n] == " " {
		n++
	}
	return n
}

// Undo closes any open undo group and reverts the last step.
func (e *Engine) Undo() {
	e.historyStep(e.buf.Undo)
}

// Redo closes any open undo group and reapplies the last undone step.
func (e *Engine) Redo() {
	e.historyStep(e.buf.Redo)
}

func (e *Engine) historyStep(step func() (buffer.Pos, bool)) {
	e.closeGroup()
	e.SetSelectMode(false)
	if e.cfg.ReadOnly {
		return
	}
	var (
		pos buffer.Pos
		ok  bool
	)
	e.mutate(func() { pos, ok = step() })
	if !ok {
		e.notify()
		return
	}
	e.afterEdit(pos)
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
