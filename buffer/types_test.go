package buffer

import "testing"

func TestComparePos_Ordering(t *testing.T) {
	cases := []struct {
		a, b Pos
		want int
	}{
		{a: Pos{Row: 0, GraphemeCol: 0}, b: Pos{Row: 0, GraphemeCol: 0}, want: 0},
		{a: Pos{Row: 0, GraphemeCol: 5}, b: Pos{Row: 1, GraphemeCol: 0}, want: -1},
		{a: Pos{Row: 2, GraphemeCol: 0}, b: Pos{Row: 1, GraphemeCol: 9}, want: 1},
		{a: Pos{Row: 1, GraphemeCol: 3}, b: Pos{Row: 1, GraphemeCol: 2}, want: 1},
	}
	for _, tc := range cases {
		if got := ComparePos(tc.a, tc.b); got != tc.want {
			t.Fatalf("ComparePos(%v,%v): got %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNormalizeRange_OrdersEndpoints(t *testing.T) {
	r := Range{Start: Pos{Row: 3, GraphemeCol: 1}, End: Pos{Row: 1, GraphemeCol: 4}}
	got := NormalizeRange(r)
	if got.Start != r.End || got.End != r.Start {
		t.Fatalf("normalized range: got %v, want swapped endpoints", got)
	}
	if MinPos(r.Start, r.End) != got.Start || MaxPos(r.Start, r.End) != got.End {
		t.Fatalf("min/max disagree with NormalizeRange")
	}
	if !got.Contains(Pos{Row: 2, GraphemeCol: 0}) {
		t.Fatalf("range should contain middle row")
	}
}

func TestClampPos_Bounds(t *testing.T) {
	lineLen := func(row int) int { return []int{2, 5}[row] }

	if got, want := ClampPos(Pos{Row: -1, GraphemeCol: -3}, 2, lineLen), (Pos{}); got != want {
		t.Fatalf("clamp negative: got %v, want %v", got, want)
	}
	if got, want := ClampPos(Pos{Row: 9, GraphemeCol: 9}, 2, lineLen), (Pos{Row: 1, GraphemeCol: 5}); got != want {
		t.Fatalf("clamp past end: got %v, want %v", got, want)
	}
	if got, want := ClampPos(Pos{Row: 3, GraphemeCol: 3}, 0, nil), (Pos{}); got != want {
		t.Fatalf("clamp empty doc: got %v, want %v", got, want)
	}
}

func TestEndOfInsert(t *testing.T) {
	p := Pos{Row: 2, GraphemeCol: 3}
	if got, want := EndOfInsert(p, "ab"), (Pos{Row: 2, GraphemeCol: 5}); got != want {
		t.Fatalf("single line: got %v, want %v", got, want)
	}
	if got, want := EndOfInsert(p, "x\nyz\nw"), (Pos{Row: 4, GraphemeCol: 1}); got != want {
		t.Fatalf("multi line: got %v, want %v", got, want)
	}
	if got, want := EndOfInsert(p, "\n"), (Pos{Row: 3, GraphemeCol: 0}); got != want {
		t.Fatalf("newline: got %v, want %v", got, want)
	}
}
