package editor

import "github.com/iw2rmb/quill/layout"

type shapeKey struct {
	version  uint64
	wrap     layout.WrapMode
	width    int
	tabWidth int
}

// shapeCache memoises shaped lines for one buffer version and layout
// configuration.
type shapeCache struct {
	key       shapeKey
	wrapped   map[int]layout.Line
	unwrapped map[int]layout.Line
}

func (e *Engine) shapeKey() shapeKey {
	return shapeKey{
		version:  e.buf.Version(),
		wrap:     e.wrap,
		width:    e.width,
		tabWidth: e.tabWidth,
	}
}

func (e *Engine) ensureShapes() {
	key := e.shapeKey()
	if e.shapes.wrapped != nil && e.shapes.key == key {
		return
	}
	e.shapes = shapeCache{
		key:       key,
		wrapped:   make(map[int]layout.Line),
		unwrapped: make(map[int]layout.Line),
	}
}

// shape returns row shaped for display under the current wrap mode.
func (e *Engine) shape(row int) layout.Line {
	if !e.wrap.Wraps() {
		return e.shapeUnwrapped(row)
	}
	e.ensureShapes()
	if l, ok := e.shapes.wrapped[row]; ok {
		return l
	}
	l := e.shaper.Shape(e.buf.Line(row), e.tabWidth, e.width, e.wrap)
	e.shapes.wrapped[row] = l
	return l
}

// shapeUnwrapped returns row as a single visual row.
func (e *Engine) shapeUnwrapped(row int) layout.Line {
	e.ensureShapes()
	if l, ok := e.shapes.unwrapped[row]; ok {
		return l
	}
	l := e.shaper.Shape(e.buf.Line(row), e.tabWidth, 0, layout.WrapNone)
	e.shapes.unwrapped[row] = l
	return l
}

// rowsOf returns the number of visual rows line row occupies.
func (e *Engine) rowsOf(row int) int {
	if !e.wrap.Wraps() {
		return 1
	}
	return e.shape(row).RowCount()
}

// cursorRow returns the visual row of the cursor within its line.
func (e *Engine) cursorRow() int {
	if !e.wrap.Wraps() {
		return 0
	}
	return e.shape(e.pos.Row).RowForCol(e.pos.GraphemeCol)
}
