package buffer

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// Pos points into the logical document by (row, grapheme column).
// Row and GraphemeCol are 0-based.
type Pos struct {
	Row         int
	GraphemeCol int
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.GraphemeCol) }

// Range is a half-open span in document coordinates: [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

// TextEdit replaces the text in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

// ComparePos orders positions by row, then column.
func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.GraphemeCol < b.GraphemeCol {
		return -1
	}
	if a.GraphemeCol > b.GraphemeCol {
		return 1
	}
	return 0
}

// MinPos returns the earlier of a and b.
func MinPos(a, b Pos) Pos {
	if ComparePos(a, b) <= 0 {
		return a
	}
	return b
}

// MaxPos returns the later of a and b.
func MaxPos(a, b Pos) Pos {
	if ComparePos(a, b) >= 0 {
		return a
	}
	return b
}

// NormalizeRange orders Start before End.
func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether p lies in [Start, End].
func (r Range) Contains(p Pos) bool {
	r = NormalizeRange(r)
	return ComparePos(r.Start, p) <= 0 && ComparePos(p, r.End) <= 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// - rowCount is the number of logical lines (rows).
// - lineLen(row) returns the grapheme length of the given row.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= GraphemeCol <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = max(lineLen(row), 0)
	}
	return Pos{Row: row, GraphemeCol: clampInt(p.GraphemeCol, 0, maxCol)}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}

// EndOfInsert returns the position just after text when inserted at p.
func EndOfInsert(p Pos, text string) Pos {
	nl := strings.LastIndexByte(text, '\n')
	if nl < 0 {
		return Pos{Row: p.Row, GraphemeCol: p.GraphemeCol + grapheme.Count(text)}
	}
	return Pos{
		Row:         p.Row + strings.Count(text, "\n"),
		GraphemeCol: grapheme.Count(text[nl+1:]),
	}
}
