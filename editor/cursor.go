package editor

import "github.com/iw2rmb/quill/buffer"

// Position returns the cursor position.
func (e *Engine) Position() buffer.Pos { return e.pos }

// Anchor returns the fixed end of the selection.
func (e *Engine) Anchor() buffer.Pos { return e.anchor }

func (e *Engine) HasSelection() bool { return e.pos != e.anchor }

// Selection returns the normalized selection range.
func (e *Engine) Selection() (buffer.Range, bool) {
	if !e.HasSelection() {
		return buffer.Range{Start: e.pos, End: e.pos}, false
	}
	return buffer.Range{Start: buffer.MinPos(e.anchor, e.pos), End: buffer.MaxPos(e.anchor, e.pos)}, true
}

// SelectedText returns the selected text or "".
func (e *Engine) SelectedText() string {
	r, ok := e.Selection()
	if !ok {
		return ""
	}
	return e.buf.TextInRange(r)
}

// SetPosition moves the cursor. Unless extend is set the selection
// collapses onto pos.
func (e *Engine) SetPosition(pos buffer.Pos, extend bool) {
	e.detached = false
	e.setPosition(pos, extend, false)
	e.AdjustScrollPosition()
}

func (e *Engine) SetAnchor(pos buffer.Pos) {
	e.anchor = e.buf.ClampPos(pos)
	e.notify()
}

// SetSelection sets both ends of the selection.
func (e *Engine) SetSelection(anchor, pos buffer.Pos) {
	e.anchor = e.buf.ClampPos(anchor)
	e.detached = false
	e.setPosition(pos, true, false)
	e.AdjustScrollPosition()
}

// SelectAll selects the whole document, leaving the cursor at its end.
func (e *Engine) SelectAll() {
	e.SetSelection(e.buf.DocStart(), e.buf.DocEnd())
}

// setPosition clamps and stores pos. Vertical moves keep the sticky column.
func (e *Engine) setPosition(pos buffer.Pos, extend, vertical bool) {
	e.pos = e.buf.ClampPos(pos)
	if !extend {
		if e.anchor != e.pos && e.cfg.Hooks != nil {
			e.cfg.Hooks.ClearAdvancedSelection()
		}
		e.anchor = e.pos
	}
	if !vertical {
		e.stickyCell = -1
	}
}

// navigate applies a cursor motion with the select-mode extension rule.
func (e *Engine) navigate(to buffer.Pos, extend bool) {
	e.detached = false
	e.setPosition(to, extend || e.selectMode, false)
	e.AdjustScrollPosition()
}

func (e *Engine) MoveCharacterLeft(extend bool)  { e.navigate(e.buf.PrevGrapheme(e.pos), extend) }
func (e *Engine) MoveCharacterRight(extend bool) { e.navigate(e.buf.NextGrapheme(e.pos), extend) }

func (e *Engine) MoveWordLeft(extend bool)  { e.navigate(e.buf.WordLeft(e.pos), extend) }
func (e *Engine) MoveWordRight(extend bool) { e.navigate(e.buf.WordRight(e.pos), extend) }

func (e *Engine) MoveToStartOfLine(extend bool) { e.navigate(e.buf.LineStart(e.pos), extend) }
func (e *Engine) MoveToEndOfLine(extend bool)   { e.navigate(e.buf.LineEnd(e.pos), extend) }

// MoveToStartIndentedText moves to the first non-blank column. When the
// cursor already sits there, or the line is blank, it moves to column 0.
func (e *Engine) MoveToStartIndentedText(extend bool) {
	to := e.buf.FirstNonBlank(e.pos)
	if to == e.pos || to.GraphemeCol >= e.buf.LineLen(e.pos.Row) {
		to = e.buf.LineStart(e.pos)
	}
	e.navigate(to, extend)
}

func (e *Engine) MoveToStartOfDocument(extend bool) { e.navigate(e.buf.DocStart(), extend) }
func (e *Engine) MoveToEndOfDocument(extend bool)   { e.navigate(e.buf.DocEnd(), extend) }

func (e *Engine) MoveUp(extend bool)   { e.moveVertical(-1, extend) }
func (e *Engine) MoveDown(extend bool) { e.moveVertical(1, extend) }

// PageUp moves up by the viewport height less one row.
func (e *Engine) PageUp(extend bool) { e.moveVertical(-e.pageSteps(), extend) }

// PageDown moves down by the viewport height less one row.
func (e *Engine) PageDown(extend bool) { e.moveVertical(e.pageSteps(), extend) }

func (e *Engine) pageSteps() int { return max(1, e.height-1) }

// moveVertical moves by visual rows when wrapping and by logical lines
// otherwise, aiming for the sticky cell.
func (e *Engine) moveVertical(steps int, extend bool) {
	if e.stickyCell < 0 {
		e.stickyCell = e.shape(e.pos.Row).ColumnInRow(e.pos.GraphemeCol)
	}

	row, sub := e.pos.Row, e.cursorRow()
	last := e.buf.LineCount() - 1
	for ; steps < 0; steps++ {
		if sub > 0 {
			sub--
		} else if row > 0 {
			row--
			sub = e.rowsOf(row) - 1
		} else {
			break
		}
	}
	for ; steps > 0; steps-- {
		if sub < e.rowsOf(row)-1 {
			sub++
		} else if row < last {
			row++
			sub = 0
		} else {
			break
		}
	}

	col := e.shape(row).ColForRowCell(sub, e.stickyCell)
	e.detached = false
	e.setPosition(buffer.Pos{Row: row, GraphemeCol: col}, extend || e.selectMode, true)
	e.AdjustScrollPosition()
}

// ToggleSelectMode flips persistent selection extension. Entering select
// mode keeps detached scrolling.
func (e *Engine) ToggleSelectMode() { e.SetSelectMode(!e.selectMode) }

func (e *Engine) SetSelectMode(on bool) {
	if e.selectMode == on {
		return
	}
	e.selectMode = on
	if e.cfg.Events.SelectModeChanged != nil {
		e.cfg.Events.SelectModeChanged(on)
	}
	e.notify()
}

func (e *Engine) ToggleOverwrite() { e.SetOverwrite(!e.overwrite) }

func (e *Engine) SetOverwrite(on bool) {
	if e.overwrite == on {
		return
	}
	e.overwrite = on
	if e.cfg.Events.OverwriteModeChanged != nil {
		e.cfg.Events.OverwriteModeChanged(on)
	}
}
