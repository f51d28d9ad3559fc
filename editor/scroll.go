package editor

import (
	"github.com/iw2rmb/quill/layout"
)

// scrollPos is a vertical scroll position: a logical line and the number of
// its wrapped rows hidden above the viewport.
type scrollPos struct {
	line, fine int
}

func compareScroll(a, b scrollPos) int {
	switch {
	case a.line != b.line:
		if a.line < b.line {
			return -1
		}
		return 1
	case a.fine < b.fine:
		return -1
	case a.fine > b.fine:
		return 1
	default:
		return 0
	}
}

func (e *Engine) scrollPos() scrollPos {
	return scrollPos{line: e.scrollLine.Row(), fine: e.scrollFine}
}

func (e *Engine) setScrollPos(p scrollPos) {
	e.scrollLine.Set(p.line)
	e.scrollFine = p.fine
}

// ScrollPosition returns the current viewport origin.
func (e *Engine) ScrollPosition() ScrollPosition {
	return ScrollPosition{Column: e.scrollColumn, Line: e.scrollLine.Row(), FineLine: e.scrollFine}
}

// ScrollRange returns the largest meaningful scroll position. MaxColumn is
// derived from the widest visible row and is always 0 when wrapping.
func (e *Engine) ScrollRange() ScrollRange {
	r := ScrollRange{MaxLine: max(e.buf.LineCount()-1, 0)}
	if e.wrap.Wraps() || e.width <= 0 {
		return r
	}
	widest := 0
	for _, vr := range e.VisibleRows() {
		widest = max(widest, vr.Shape.Width())
	}
	r.MaxColumn = max(0, widest+1-e.width)
	return r
}

// SetViewSize sets the text area size in cells. Zero in either dimension
// suspends scroll adjustment.
func (e *Engine) SetViewSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == e.width && height == e.height {
		return
	}
	e.width, e.height = width, height
	e.AdjustScrollPosition()
}

// SetWrapMode changes the wrap mode. Leaving WrapNone resets the scroll
// column.
func (e *Engine) SetWrapMode(mode layout.WrapMode) {
	if mode == e.wrap {
		return
	}
	if e.wrap == layout.WrapNone {
		e.scrollColumn = 0
	}
	e.wrap = mode
	e.AdjustScrollPosition()
}

func (e *Engine) SetTabWidth(n int) {
	if n <= 0 || n == e.tabWidth {
		return
	}
	e.tabWidth = n
	e.AdjustScrollPosition()
}

// AdjustScrollPosition scrolls the minimum amount needed to show the
// cursor. In detached mode it only clamps the scroll position to the
// document.
func (e *Engine) AdjustScrollPosition() {
	if e.width > 0 && e.height > 0 {
		e.clampScroll()
		if !e.detached {
			e.followCursor()
		}
	}
	e.notify()
}

func (e *Engine) clampScroll() {
	p := e.scrollPos()
	p.line = min(max(p.line, 0), e.buf.LineCount()-1)
	p.fine = min(max(p.fine, 0), e.rowsOf(p.line)-1)
	e.setScrollPos(p)

	if e.wrap.Wraps() {
		e.scrollColumn = 0
		return
	}
	e.scrollColumn = max(e.scrollColumn, 0)
	if e.detached {
		e.scrollColumn = min(e.scrollColumn, e.ScrollRange().MaxColumn)
	}
}

// followCursor implements the vertical rule for all wrap modes (a line
// without wrapping is one row) followed by the horizontal rule for
// WrapNone. The last view row is kept free as slack.
func (e *Engine) followCursor() {
	avail := max(e.height-1, 1)
	cursorLine := e.pos.Row
	above := e.cursorRow()
	n := above + 1

	var candidate scrollPos
	if n >= avail {
		candidate = scrollPos{line: cursorLine, fine: n - avail}
	} else {
		remaining := avail - n
		for row := cursorLine - 1; row >= 0; row-- {
			rc := e.rowsOf(row)
			if rc >= remaining {
				candidate = scrollPos{line: row, fine: rc - remaining}
				break
			}
			remaining -= rc
		}
	}

	cur := e.scrollPos()
	if compareScroll(candidate, cur) > 0 {
		cur = candidate
	}
	switch {
	case cur.line == cursorLine && cur.fine > above:
		cur.fine = above
	case cur.line > cursorLine:
		cur = scrollPos{line: cursorLine, fine: above}
	}
	if bound := e.bottomBound(); compareScroll(cur, bound) > 0 {
		cur = bound
	}
	e.setScrollPos(cur)

	if e.wrap.Wraps() {
		e.scrollColumn = 0
		return
	}
	col := e.shapeUnwrapped(cursorLine).CellForCol(e.pos.GraphemeCol)
	switch {
	case col-e.scrollColumn >= e.width:
		e.scrollColumn = col - e.width + 1
	case col-e.scrollColumn < 1:
		switch {
		case col == 0:
			e.scrollColumn = 0
		case e.width > 1:
			e.scrollColumn = col - 1
		default:
			e.scrollColumn = col
		}
	}
}

// bottomBound is the latest scroll position that still fills the slack
// height with document rows.
func (e *Engine) bottomBound() scrollPos {
	remaining := max(e.height-1, 1)
	for row := e.buf.LineCount() - 1; row >= 0; row-- {
		rc := e.rowsOf(row)
		if rc >= remaining {
			return scrollPos{line: row, fine: rc - remaining}
		}
		remaining -= rc
	}
	return scrollPos{}
}

// lastScrollPos is the furthest position detached scrolling may reach: the
// last row of the document at the top of the view.
func (e *Engine) lastScrollPos() scrollPos {
	last := e.buf.LineCount() - 1
	return scrollPos{line: last, fine: e.rowsOf(last) - 1}
}

// SetScrollPosition moves the viewport without moving the cursor and
// enters detached scrolling. Requests outside the document are rejected.
func (e *Engine) SetScrollPosition(column, line, fineLine int) bool {
	if column < 0 || line < 0 || fineLine < 0 || line >= e.buf.LineCount() || fineLine >= e.rowsOf(line) {
		e.log.Debug("scroll request rejected", "column", column, "line", line, "fine", fineLine)
		return false
	}
	if e.wrap.Wraps() {
		column = 0
	}
	e.detached = true
	e.setScrollPos(scrollPos{line: line, fine: fineLine})
	e.scrollColumn = column
	e.AdjustScrollPosition()
	return true
}

// ScrollBy scrolls the viewport by visual rows and columns without moving
// the cursor, entering detached scrolling.
func (e *Engine) ScrollBy(rows, cols int) {
	if e.width <= 0 || e.height <= 0 {
		return
	}
	e.detached = true
	p := e.scrollPos()
	for ; rows < 0; rows++ {
		if p.fine > 0 {
			p.fine--
		} else if p.line > 0 {
			p.line--
			p.fine = e.rowsOf(p.line) - 1
		} else {
			break
		}
	}
	last := e.lastScrollPos()
	for ; rows > 0 && compareScroll(p, last) < 0; rows-- {
		if p.fine < e.rowsOf(p.line)-1 {
			p.fine++
		} else {
			p.line++
			p.fine = 0
		}
	}
	e.setScrollPos(p)
	if !e.wrap.Wraps() {
		e.scrollColumn = max(e.scrollColumn+cols, 0)
	}
	e.AdjustScrollPosition()
}
