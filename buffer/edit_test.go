package buffer

import "testing"

func TestBuffer_Insert_MultiLine(t *testing.T) {
	b := New("ab", Options{})
	v := b.Version()

	end := b.Insert(Pos{Row: 0, GraphemeCol: 1}, "X\nY")
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := end, (Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("end: got %v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version: got %d, want %d", got, v+1)
	}
}

func TestBuffer_Insert_ClampsPosition(t *testing.T) {
	b := New("ab\ncd", Options{})
	end := b.Insert(Pos{Row: 9, GraphemeCol: 9}, "!")
	if got, want := b.Text(), "ab\ncd!"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := end, (Pos{Row: 1, GraphemeCol: 3}); got != want {
		t.Fatalf("end: got %v, want %v", got, want)
	}
}

func TestBuffer_Insert_Unicode(t *testing.T) {
	b := New("", Options{})
	p := b.Insert(Pos{}, "π")
	p = b.Insert(p, "テ")

	if got, want := b.Text(), "πテ"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := p, (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("end: got %v, want %v", got, want)
	}
}

func TestBuffer_Delete_JoinsLines(t *testing.T) {
	b := New("ab\ncd", Options{})
	at := b.Delete(Range{Start: Pos{Row: 1, GraphemeCol: 0}, End: Pos{Row: 0, GraphemeCol: 2}})
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := at, (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("delete start: got %v, want %v", got, want)
	}
}

func TestBuffer_Delete_EmptyRangeIsNoOp(t *testing.T) {
	b := New("abc", Options{})
	v := b.Version()
	b.Delete(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 1}})
	if b.Version() != v {
		t.Fatalf("version changed on empty delete: got %d, want %d", b.Version(), v)
	}
	if b.CanUndo() {
		t.Fatalf("empty delete must not record history")
	}
}

func TestBuffer_Replace_SameTextIsNoOp(t *testing.T) {
	b := New("hello", Options{})
	v := b.Version()
	end := b.Replace(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 3}}, "el")
	if b.Version() != v {
		t.Fatalf("version changed on identical replace")
	}
	if got, want := end, (Pos{Row: 0, GraphemeCol: 3}); got != want {
		t.Fatalf("end: got %v, want %v", got, want)
	}
}

func TestBuffer_Apply_SingleUndoStep(t *testing.T) {
	b := New("a\nb\nc", Options{})
	b.Apply(
		TextEdit{Range: Range{Start: Pos{Row: 0}, End: Pos{Row: 0}}, Text: "\t"},
		TextEdit{Range: Range{Start: Pos{Row: 2}, End: Pos{Row: 2}}, Text: "\t"},
	)
	if got, want := b.Text(), "\ta\nb\n\tc"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if _, ok := b.Undo(); !ok {
		t.Fatalf("expected undo")
	}
	if got, want := b.Text(), "a\nb\nc"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
	if b.CanUndo() {
		t.Fatalf("apply must record a single step")
	}
}
