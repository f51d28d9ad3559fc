package buffer

import (
	"context"
	"sort"
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// Query describes a text search.
type Query struct {
	// Text is matched literally. Queries containing '\n' never match.
	Text          string
	CaseSensitive bool
	// WholeWord requires the match to be bounded by non-word graphemes.
	WholeWord bool
	// Backward searches towards the start of the document.
	Backward bool
	// Wrap continues from the other end of the document when the search
	// runs off one end.
	Wrap bool
}

const findCancelCheckRows = 256

// Find searches forward for the first match starting at or after from, or
// backward for the last match ending at or before from.
func (b *Buffer) Find(q Query, from Pos) (Range, bool) {
	r, ok, _ := b.Snapshot().Find(context.Background(), q, b.ClampPos(from))
	return r, ok
}

// Find searches the snapshot. It returns ctx.Err() if ctx is cancelled
// before the search completes.
func (s *Snapshot) Find(ctx context.Context, q Query, from Pos) (Range, bool, error) {
	if q.Text == "" || strings.Contains(q.Text, "\n") || len(s.lines) == 0 {
		return Range{}, false, nil
	}
	from = ClampPos(from, len(s.lines), s.LineLen)
	needle := foldKey(grapheme.Split(q.Text), q.CaseSensitive)

	rows := len(s.lines)
	visit := func(i, row int) (Range, bool, error) {
		if i%findCancelCheckRows == 0 {
			if err := ctx.Err(); err != nil {
				return Range{}, false, err
			}
		}
		m := newLineMatcher(s.lines[row], q)
		var start, end int
		var ok bool
		switch {
		case !q.Backward && row == from.Row && i == 0:
			start, end, ok = m.next(needle, from.GraphemeCol)
		case !q.Backward:
			start, end, ok = m.next(needle, 0)
		case row == from.Row && i == 0:
			start, end, ok = m.prev(needle, from.GraphemeCol)
		default:
			start, end, ok = m.prev(needle, len(s.lines[row]))
		}
		if !ok {
			return Range{}, false, nil
		}
		return Range{Start: Pos{Row: row, GraphemeCol: start}, End: Pos{Row: row, GraphemeCol: end}}, true, nil
	}

	span := rows - from.Row
	if q.Backward {
		span = from.Row + 1
	}
	if q.Wrap {
		span = rows + 1
	}
	for i := 0; i < span; i++ {
		var row int
		if q.Backward {
			row = ((from.Row-i)%rows + rows) % rows
		} else {
			row = (from.Row + i) % rows
		}
		r, ok, err := visit(i, row)
		if err != nil || ok {
			return r, ok, err
		}
	}
	return Range{}, false, nil
}

// lineMatcher holds a folded copy of one line and the byte offset of every
// grapheme within it.
type lineMatcher struct {
	graphemes []string
	key       string
	starts    []int
	wholeWord bool
}

func newLineMatcher(line []string, q Query) lineMatcher {
	var sb strings.Builder
	starts := make([]int, 0, len(line)+1)
	for _, g := range line {
		starts = append(starts, sb.Len())
		if q.CaseSensitive {
			sb.WriteString(g)
		} else {
			sb.WriteString(grapheme.Fold(g))
		}
	}
	starts = append(starts, sb.Len())
	return lineMatcher{graphemes: line, key: sb.String(), starts: starts, wholeWord: q.WholeWord}
}

func foldKey(clusters []string, caseSensitive bool) string {
	if caseSensitive {
		return grapheme.Join(clusters)
	}
	var sb strings.Builder
	for _, g := range clusters {
		sb.WriteString(grapheme.Fold(g))
	}
	return sb.String()
}

// col maps a byte offset in key to a grapheme column; ok is false when the
// offset does not fall on a grapheme boundary.
func (m lineMatcher) col(off int) (int, bool) {
	i := sort.SearchInts(m.starts, off)
	return i, i < len(m.starts) && m.starts[i] == off
}

func (m lineMatcher) accept(start, end int) bool {
	if !m.wholeWord {
		return true
	}
	if start > 0 && grapheme.IsWord(m.graphemes[start-1]) {
		return false
	}
	if end < len(m.graphemes) && grapheme.IsWord(m.graphemes[end]) {
		return false
	}
	return true
}

func (m lineMatcher) next(needle string, fromCol int) (int, int, bool) {
	off := m.starts[clampInt(fromCol, 0, len(m.graphemes))]
	for off <= len(m.key) {
		idx := strings.Index(m.key[off:], needle)
		if idx < 0 {
			return 0, 0, false
		}
		idx += off
		start, okStart := m.col(idx)
		end, okEnd := m.col(idx + len(needle))
		if okStart && okEnd && m.accept(start, end) {
			return start, end, true
		}
		off = idx + 1
	}
	return 0, 0, false
}

func (m lineMatcher) prev(needle string, limitCol int) (int, int, bool) {
	limit := m.starts[clampInt(limitCol, 0, len(m.graphemes))]
	for limit >= len(needle) {
		idx := strings.LastIndex(m.key[:limit], needle)
		if idx < 0 {
			return 0, 0, false
		}
		start, okStart := m.col(idx)
		end, okEnd := m.col(idx + len(needle))
		if okStart && okEnd && m.accept(start, end) {
			return start, end, true
		}
		limit = idx + len(needle) - 1
	}
	return 0, 0, false
}
