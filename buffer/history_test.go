package buffer

import "testing"

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", Options{})
	if b.CanUndo() || b.CanRedo() {
		t.Fatalf("fresh buffer must have empty history")
	}

	b.Insert(Pos{}, "a")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	v := b.Version()
	at, ok := b.Undo()
	if !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), ""; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := at, (Pos{}); got != want {
		t.Fatalf("undo cursor: got %v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version: got %d, want %d", got, v+1)
	}

	at, ok = b.Redo()
	if !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := at, (Pos{Row: 0, GraphemeCol: 1}); got != want {
		t.Fatalf("redo cursor: got %v, want %v", got, want)
	}
}

func TestBuffer_Undo_EmptyStacksNoMutation(t *testing.T) {
	b := New("hi", Options{})
	v := b.Version()
	if _, ok := b.Undo(); ok {
		t.Fatalf("expected Undo=false")
	}
	if _, ok := b.Redo(); ok {
		t.Fatalf("expected Redo=false")
	}
	if b.Version() != v || b.Text() != "hi" {
		t.Fatalf("empty undo/redo mutated the buffer")
	}
}

func TestBuffer_Typing_Coalesces(t *testing.T) {
	b := New("", Options{})
	p := Pos{}
	for _, g := range []string{"a", "b", "c"} {
		p = b.Insert(p, g)
	}
	if _, ok := b.Undo(); !ok {
		t.Fatalf("expected undo")
	}
	if got := b.Text(); got != "" {
		t.Fatalf("text after one undo: got %q, want empty", got)
	}
}

func TestBuffer_BreakCoalescing_StartsNewStep(t *testing.T) {
	b := New("", Options{})
	p := b.Insert(Pos{}, "a")
	b.BreakCoalescing()
	b.Insert(p, "b")

	b.Undo()
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
}

func TestBuffer_Typing_NonContiguousDoesNotCoalesce(t *testing.T) {
	b := New("xy", Options{})
	b.Insert(Pos{Row: 0, GraphemeCol: 0}, "a")
	b.Insert(Pos{Row: 0, GraphemeCol: 3}, "b")

	b.Undo()
	if got, want := b.Text(), "axy"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
}

func TestBuffer_UndoGroup_CoalescesEdits(t *testing.T) {
	b := New("one\ntwo", Options{})
	g := b.BeginGroup()
	b.Insert(Pos{Row: 0}, "\t")
	b.Insert(Pos{Row: 1}, "\t")
	inner := b.BeginGroup()
	b.Delete(Range{Start: Pos{Row: 1, GraphemeCol: 1}, End: Pos{Row: 1, GraphemeCol: 2}})
	inner.Close()
	if !b.InGroup() {
		t.Fatalf("outer group must still be open")
	}
	g.Close()
	g.Close()

	if got, want := b.Text(), "\tone\n\two"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	b.Undo()
	if got, want := b.Text(), "one\ntwo"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
	if b.CanUndo() {
		t.Fatalf("group must undo as one step")
	}
	b.Redo()
	if got, want := b.Text(), "\tone\n\two"; got != want {
		t.Fatalf("text after redo: got %q, want %q", got, want)
	}
}

func TestBuffer_Undo_ClosesOpenGroup(t *testing.T) {
	b := New("", Options{})
	g := b.BeginGroup()
	b.Insert(Pos{}, "ab")
	b.Undo()
	if b.InGroup() {
		t.Fatalf("undo must close the open group")
	}
	if got := b.Text(); got != "" {
		t.Fatalf("text: got %q, want empty", got)
	}
	g.Close()
}

func TestBuffer_Undo_StaleGroupHandleIsClosed(t *testing.T) {
	b := New("", Options{})
	stale := b.BeginGroup()
	b.Insert(Pos{}, "ab")
	b.Undo()
	if !stale.Closed() {
		t.Fatalf("undo must mark the held group closed")
	}

	g := b.BeginGroup()
	p := b.Insert(Pos{}, "x")
	stale.Close()
	if !b.InGroup() {
		t.Fatalf("closing a flushed handle ended a newer group")
	}
	b.Insert(p, "y")
	g.Close()

	if got, want := b.Text(), "xy"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	b.Undo()
	if got := b.Text(); got != "" {
		t.Fatalf("text after undo: got %q, want empty", got)
	}
	if b.CanUndo() {
		t.Fatalf("group must undo as one step")
	}
}

func TestBuffer_HistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	p := Pos{}
	for _, s := range []string{"a\n", "b\n", "c\n"} {
		p = b.Insert(p, s)
	}
	b.Undo()
	b.Undo()
	if _, ok := b.Undo(); ok {
		t.Fatalf("history beyond limit must be dropped")
	}
	if got, want := b.Text(), "a\n"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestBuffer_Modified_TracksCleanPoint(t *testing.T) {
	b := New("x", Options{})
	if b.Modified() {
		t.Fatalf("fresh buffer must be unmodified")
	}
	p := b.Insert(Pos{Row: 0, GraphemeCol: 1}, "y")
	if !b.Modified() {
		t.Fatalf("expected modified after insert")
	}
	b.MarkClean()
	if b.Modified() {
		t.Fatalf("expected clean after MarkClean")
	}
	b.Insert(p, "z")
	if !b.Modified() {
		t.Fatalf("typing after MarkClean must mark modified")
	}
	b.Undo()
	if b.Modified() {
		t.Fatalf("undo back to clean point must be unmodified")
	}
}

func TestBuffer_Undo_RestoresDeletedText(t *testing.T) {
	b := New("hello\nworld", Options{})
	b.Delete(Range{Start: Pos{Row: 0, GraphemeCol: 3}, End: Pos{Row: 1, GraphemeCol: 2}})
	at, _ := b.Undo()
	if got, want := b.Text(), "hello\nworld"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := at, (Pos{Row: 1, GraphemeCol: 2}); got != want {
		t.Fatalf("undo cursor: got %v, want %v", got, want)
	}
}
