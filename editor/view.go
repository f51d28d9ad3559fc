package editor

import (
	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/layout"
)

// VisualRow is one screen row of the viewport.
type VisualRow struct {
	// Line is the logical line and Row the wrapped row within it.
	Line  int
	Row   int
	Shape layout.Line
}

// Span returns the row's grapheme and cell span.
func (r VisualRow) Span() layout.Row {
	if r.Row < 0 || r.Row >= len(r.Shape.Rows) {
		return layout.Row{}
	}
	return r.Shape.Rows[r.Row]
}

// VisibleRows returns the rows currently inside the viewport, top to
// bottom. Rows past the end of the document are omitted.
func (e *Engine) VisibleRows() []VisualRow {
	if e.height <= 0 {
		return nil
	}
	out := make([]VisualRow, 0, e.height)
	p := e.scrollPos()
	lines := e.buf.LineCount()
	for line := p.line; line < lines && len(out) < e.height; line++ {
		shape := e.shape(line)
		start := 0
		if line == p.line {
			start = p.fine
		}
		for row := start; row < shape.RowCount() && len(out) < e.height; row++ {
			out = append(out, VisualRow{Line: line, Row: row, Shape: shape})
		}
	}
	return out
}

// PosToScreen maps a document position to text-area cell coordinates. ok is
// false when the position is outside the viewport.
func (e *Engine) PosToScreen(pos buffer.Pos) (x, y int, ok bool) {
	pos = e.buf.ClampPos(pos)
	shape := e.shape(pos.Row)
	sub := 0
	if e.wrap.Wraps() {
		sub = shape.RowForCol(pos.GraphemeCol)
	}

	top := e.scrollPos()
	target := scrollPos{line: pos.Row, fine: sub}
	if compareScroll(target, top) < 0 {
		return 0, 0, false
	}
	y = -top.fine
	for line := top.line; line < pos.Row; line++ {
		y += e.rowsOf(line)
		if y >= e.height {
			return 0, y, false
		}
	}
	y += sub

	if e.wrap.Wraps() {
		x = shape.ColumnInRow(pos.GraphemeCol)
	} else {
		x = shape.CellForCol(pos.GraphemeCol) - e.scrollColumn
	}
	ok = y >= 0 && y < e.height && x >= 0 && x < e.width
	return x, y, ok
}

// ScreenToPos maps text-area cell coordinates to the nearest document
// position. Coordinates outside the viewport are clamped into it.
func (e *Engine) ScreenToPos(x, y int) buffer.Pos {
	rows := e.VisibleRows()
	if len(rows) == 0 {
		return e.pos
	}
	vr := rows[min(max(y, 0), len(rows)-1)]
	x = max(x, 0)
	if !e.wrap.Wraps() {
		x += e.scrollColumn
	}
	return buffer.Pos{Row: vr.Line, GraphemeCol: vr.Shape.ColForRowCell(vr.Row, x)}
}
