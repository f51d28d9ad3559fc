package buffer

import "testing"

func TestLineMarker_ShiftsWithLinesInsertedAbove(t *testing.T) {
	b := New("a\nb\nc\nd", Options{})
	m := b.NewLineMarker(2)
	var moves [][2]int
	m.OnMove(func(oldRow, newRow int) { moves = append(moves, [2]int{oldRow, newRow}) })

	b.Insert(Pos{Row: 0, GraphemeCol: 0}, "x\ny\n")
	if got, want := m.Row(), 4; got != want {
		t.Fatalf("marker row after insert above: got %d, want %d", got, want)
	}
	if len(moves) != 1 || moves[0] != [2]int{2, 4} {
		t.Fatalf("move notifications: got %v, want [[2 4]]", moves)
	}
}

func TestLineMarker_StaysOnEditStartRow(t *testing.T) {
	b := New("a\nb\nc", Options{})
	m := b.NewLineMarker(1)
	fired := false
	m.OnMove(func(int, int) { fired = true })

	b.Insert(Pos{Row: 1, GraphemeCol: 0}, "\n\n")
	if got, want := m.Row(), 1; got != want {
		t.Fatalf("marker row: got %d, want %d", got, want)
	}
	if fired {
		t.Fatalf("OnMove must not fire when the row is unchanged")
	}
}

func TestLineMarker_CollapsesIntoDeletedRange(t *testing.T) {
	b := New("a\nb\nc\nd\ne", Options{})
	inside := b.NewLineMarker(2)
	below := b.NewLineMarker(4)

	b.Delete(Range{Start: Pos{Row: 1, GraphemeCol: 1}, End: Pos{Row: 3, GraphemeCol: 0}})
	if got, want := inside.Row(), 1; got != want {
		t.Fatalf("inside marker: got %d, want %d", got, want)
	}
	if got, want := below.Row(), 2; got != want {
		t.Fatalf("below marker: got %d, want %d", got, want)
	}
}

func TestLineMarker_FollowsUndoRedo(t *testing.T) {
	b := New("a\nb", Options{})
	m := b.NewLineMarker(1)
	b.Insert(Pos{}, "z\n")
	if m.Row() != 2 {
		t.Fatalf("marker after insert: got %d, want 2", m.Row())
	}
	b.Undo()
	if m.Row() != 1 {
		t.Fatalf("marker after undo: got %d, want 1", m.Row())
	}
	b.Redo()
	if m.Row() != 2 {
		t.Fatalf("marker after redo: got %d, want 2", m.Row())
	}
}

func TestLineMarker_SetClampsAndReleaseStopsTracking(t *testing.T) {
	b := New("a\nb", Options{})
	m := b.NewLineMarker(0)
	m.Set(10)
	if got, want := m.Row(), 1; got != want {
		t.Fatalf("clamped set: got %d, want %d", got, want)
	}
	m.Release()
	b.Insert(Pos{}, "x\ny\n")
	if got, want := m.Row(), 1; got != want {
		t.Fatalf("released marker moved: got %d, want %d", got, want)
	}
	m.Release()
}

func TestLineMarker_RemoteEditMovesMarker(t *testing.T) {
	b := New("a\nb\nc", Options{})
	m := b.NewLineMarker(2)
	b.ApplyRemote(TextEdit{Range: Range{Start: Pos{Row: 0}, End: Pos{Row: 1}}})
	if got, want := m.Row(), 1; got != want {
		t.Fatalf("marker after remote delete: got %d, want %d", got, want)
	}
}
