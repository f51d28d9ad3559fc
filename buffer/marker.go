package buffer

// LineMarker tracks a logical line index across edits.
//
// An edit replacing range r moves markers below r.End.Row by the line delta
// of the edit; markers inside (r.Start.Row, r.End.Row] collapse onto
// r.Start.Row; markers on or above r.Start.Row stay put.
type LineMarker struct {
	b      *Buffer
	row    int
	onMove func(oldRow, newRow int)
}

// NewLineMarker registers a marker at row (clamped).
func (b *Buffer) NewLineMarker(row int) *LineMarker {
	m := &LineMarker{b: b, row: clampInt(row, 0, len(b.lines)-1)}
	b.markers = append(b.markers, m)
	return m
}

// Row returns the live line index.
func (m *LineMarker) Row() int { return m.row }

// Set moves the marker to row (clamped). It does not fire OnMove.
func (m *LineMarker) Set(row int) {
	if m.b != nil {
		row = clampInt(row, 0, len(m.b.lines)-1)
	}
	m.row = row
}

// OnMove registers a callback fired when an edit moves the marker.
func (m *LineMarker) OnMove(fn func(oldRow, newRow int)) { m.onMove = fn }

// Release detaches the marker from its buffer. A released marker keeps its
// last row and no longer tracks edits.
func (m *LineMarker) Release() {
	if m.b == nil {
		return
	}
	markers := m.b.markers
	for i, other := range markers {
		if other == m {
			m.b.markers = append(markers[:i], markers[i+1:]...)
			break
		}
	}
	m.b = nil
}

func (b *Buffer) shiftMarkers(before Range, insertedLines int) {
	removed := before.End.Row - before.Start.Row
	delta := insertedLines - removed
	last := len(b.lines) - 1
	for _, m := range b.markers {
		old := m.row
		next := old
		switch {
		case old <= before.Start.Row:
		case old <= before.End.Row:
			next = before.Start.Row
		default:
			next = old + delta
		}
		next = clampInt(next, 0, last)
		if next == old {
			continue
		}
		m.row = next
		if m.onMove != nil {
			m.onMove(old, next)
		}
	}
}
