package layout

// Shaper converts a logical line into visual rows.
//
// width <= 0 or WrapNone means unbounded: the result has exactly one row.
type Shaper interface {
	Shape(text string, tabWidth, width int, mode WrapMode) Line
}

// Default is the terminal-cell shaper: widths come from go-runewidth with a
// uniseg fallback and tabs advance to the next tab stop.
type Default struct{}

var _ Shaper = Default{}

func (Default) Shape(text string, tabWidth, width int, mode WrapMode) Line {
	return Shape(text, tabWidth, width, mode)
}

// Shape is the Default shaper as a function.
func Shape(text string, tabWidth, width int, mode WrapMode) Line {
	glyphs := buildGlyphs(text, tabWidth)
	return Line{Glyphs: glyphs, Rows: wrapRows(glyphs, mode, width)}
}

func wrapRows(glyphs []Glyph, mode WrapMode, width int) []Row {
	if len(glyphs) == 0 {
		return []Row{{}}
	}
	if width <= 0 || !mode.Wraps() {
		return []Row{rowFromRange(glyphs, 0, len(glyphs))}
	}

	rows := make([]Row, 0, 1+len(glyphs)/width)
	for start := 0; start < len(glyphs); {
		used := 0
		overflow := start
		for overflow < len(glyphs) {
			w := max(glyphs[overflow].Width, 1)
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < len(glyphs) {
			if br, ok := findWordWrapBreak(glyphs, start, overflow); ok {
				end = br
			} else {
				end = adjustBreakForLeadingPunctuation(glyphs, start, overflow)
			}
		}
		if end <= start {
			end = min(start+1, len(glyphs))
		}

		rows = append(rows, rowFromRange(glyphs, start, end))
		start = end
	}
	return rows
}

func rowFromRange(glyphs []Glyph, start, end int) Row {
	first := glyphs[start]
	last := glyphs[end-1]
	return Row{
		StartCol:  start,
		EndCol:    end,
		StartCell: first.StartCell,
		EndCell:   last.StartCell + last.Width,
	}
}
