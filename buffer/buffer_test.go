package buffer

import "testing"

func TestBuffer_New_SplitsLines(t *testing.T) {
	b := New("ab\n\ncé", Options{})
	if got, want := b.LineCount(), 3; got != want {
		t.Fatalf("line count: got %d, want %d", got, want)
	}
	if got, want := b.Line(2), "cé"; got != want {
		t.Fatalf("line 2: got %q, want %q", got, want)
	}
	if got, want := b.LineLen(2), 2; got != want {
		t.Fatalf("line 2 len: got %d, want %d", got, want)
	}
	if got, want := b.Text(), "ab\n\ncé"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := b.Line(9); got != "" {
		t.Fatalf("out of range line: got %q, want empty", got)
	}
	if b.Version() != 0 {
		t.Fatalf("initial version: got %d, want 0", b.Version())
	}
}

func TestBuffer_Empty_HasOneLine(t *testing.T) {
	b := New("", Options{})
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count: got %d, want 1", got)
	}
	if got := b.ClampPos(Pos{Row: 4, GraphemeCol: 4}); got != (Pos{}) {
		t.Fatalf("clamped pos: got %v, want (0,0)", got)
	}
}

func TestBuffer_ByteColAndGraphemeAt(t *testing.T) {
	b := New("héllo", Options{})
	if got, want := b.ByteCol(Pos{Row: 0, GraphemeCol: 2}), 3; got != want {
		t.Fatalf("byte col: got %d, want %d", got, want)
	}
	if got, want := b.GraphemeAt(Pos{Row: 0, GraphemeCol: 1}), "é"; got != want {
		t.Fatalf("grapheme at 1: got %q, want %q", got, want)
	}
	if got := b.GraphemeAt(Pos{Row: 0, GraphemeCol: 5}); got != "" {
		t.Fatalf("grapheme at EOL: got %q, want empty", got)
	}
}

func TestBuffer_TextInRange_MultiLineAndReversed(t *testing.T) {
	b := New("abc\ndef\nghi", Options{})
	r := Range{Start: Pos{Row: 2, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 2}}
	if got, want := b.TextInRange(r), "c\ndef\ng"; got != want {
		t.Fatalf("text in range: got %q, want %q", got, want)
	}
	if got := b.TextInRange(Range{}); got != "" {
		t.Fatalf("empty range: got %q, want empty", got)
	}
}
