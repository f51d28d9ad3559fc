package layout

import (
	"sort"
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// Glyph is one grapheme cluster of a shaped line.
type Glyph struct {
	// Text is the rendered text. Tabs are expanded to spaces.
	Text      string
	StartCell int
	Width     int

	space bool
	punct bool
}

// Row is one visual row of a shaped line: graphemes [StartCol, EndCol)
// occupying cells [StartCell, EndCell) of the unwrapped line.
type Row struct {
	StartCol  int
	EndCol    int
	StartCell int
	EndCell   int
}

func (r Row) Cells() int { return r.EndCell - r.StartCell }

// Line is a shaped logical line. It always has at least one row.
type Line struct {
	Glyphs []Glyph
	Rows   []Row
}

// Len returns the number of grapheme columns.
func (l Line) Len() int { return len(l.Glyphs) }

// Width returns the unwrapped cell width.
func (l Line) Width() int {
	if len(l.Glyphs) == 0 {
		return 0
	}
	last := l.Glyphs[len(l.Glyphs)-1]
	return last.StartCell + last.Width
}

// RowCount returns the number of visual rows, at least 1.
func (l Line) RowCount() int { return max(len(l.Rows), 1) }

// CellForCol maps a grapheme column to its starting cell in the unwrapped
// line. Columns at or past the end map to Width.
func (l Line) CellForCol(col int) int {
	if col <= 0 {
		return 0
	}
	if col >= len(l.Glyphs) {
		return l.Width()
	}
	return l.Glyphs[col].StartCell
}

// ColForCell maps an unwrapped cell to the grapheme column covering it.
// Cells at or past the end map to Len.
func (l Line) ColForCell(cell int) int {
	if cell <= 0 {
		return 0
	}
	if cell >= l.Width() {
		return len(l.Glyphs)
	}
	i := sort.Search(len(l.Glyphs), func(i int) bool {
		g := l.Glyphs[i]
		return g.StartCell+g.Width > cell
	})
	return i
}

// RowForCol returns the row containing col. A column on a row boundary
// belongs to the following row; end of line belongs to the last row.
func (l Line) RowForCol(col int) int {
	row := 0
	for i, r := range l.Rows {
		if r.StartCol <= col {
			row = i
		}
	}
	return row
}

// ColumnInRow returns the cell offset of col relative to the start of its
// row.
func (l Line) ColumnInRow(col int) int {
	if len(l.Rows) == 0 {
		return l.CellForCol(col)
	}
	r := l.Rows[l.RowForCol(col)]
	return l.CellForCol(col) - r.StartCell
}

// ColForRowCell maps a cell offset within row to a grapheme column, clamped
// to the row's span. A cell past the end of a row that is followed by
// another row lands on the last column of the row rather than on the
// boundary, which would belong to the next row.
func (l Line) ColForRowCell(row, cell int) int {
	if len(l.Rows) == 0 {
		return l.ColForCell(cell)
	}
	row = min(max(row, 0), len(l.Rows)-1)
	r := l.Rows[row]
	col := l.ColForCell(r.StartCell + max(cell, 0))
	col = min(max(col, r.StartCol), r.EndCol)
	if col == r.EndCol && row < len(l.Rows)-1 && r.EndCol > r.StartCol {
		col = r.EndCol - 1
	}
	return col
}

// RowText renders row as it appears on screen.
func (l Line) RowText(row int) string {
	if row < 0 || row >= len(l.Rows) {
		return ""
	}
	r := l.Rows[row]
	var sb strings.Builder
	for _, g := range l.Glyphs[r.StartCol:r.EndCol] {
		sb.WriteString(g.Text)
	}
	return sb.String()
}

func buildGlyphs(text string, tabWidth int) []Glyph {
	clusters := grapheme.Split(text)
	if len(clusters) == 0 {
		return nil
	}
	glyphs := make([]Glyph, 0, len(clusters))
	cell := 0
	for _, c := range clusters {
		w := grapheme.CellWidth(c, cell, tabWidth)
		rendered := c
		if c == "\t" {
			rendered = strings.Repeat(" ", w)
		}
		glyphs = append(glyphs, Glyph{
			Text:      rendered,
			StartCell: cell,
			Width:     w,
			space:     grapheme.IsSpace(c),
			punct:     grapheme.IsPunct(c),
		})
		cell += w
	}
	return glyphs
}
