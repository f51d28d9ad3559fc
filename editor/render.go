package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/scrollbar"
)

func (m *Model) renderContent() string {
	rows := m.eng.VisibleRows()
	textWidth, height := m.eng.ViewSize()
	if height <= 0 {
		return ""
	}

	st := m.cfg.Style
	cursor := m.eng.Position()
	sel, selOK := m.eng.Selection()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(m.buf.LineCount())
	}

	out := make([]string, 0, height)
	for i := range height {
		var sb strings.Builder
		if i >= len(rows) {
			if m.cfg.ShowLineNums {
				sb.WriteString(st.LineNum.Render(strings.Repeat(" ", digits)))
				sb.WriteString(st.Gutter.Render(" "))
			}
			if m.cfg.ShowScrollbar {
				sb.WriteString(strings.Repeat(" ", textWidth))
			}
			out = append(out, sb.String())
			continue
		}

		vr := rows[i]
		if m.cfg.ShowLineNums {
			numStyle := st.LineNum
			if m.focused && vr.Line == cursor.Row && vr.Row == 0 {
				numStyle = st.LineNumActive
			}
			num := fmt.Sprintf("%*s", digits, "")
			if vr.Row == 0 {
				num = fmt.Sprintf("%*d", digits, vr.Line+1)
			}
			sb.WriteString(numStyle.Render(num))
			sb.WriteString(st.Gutter.Render(" "))
		}

		text, cells := m.renderRow(vr, cursor, sel, selOK, textWidth)
		sb.WriteString(text)
		if m.cfg.ShowScrollbar && cells < textWidth {
			sb.WriteString(st.Text.Render(strings.Repeat(" ", textWidth-cells)))
		}
		out = append(out, sb.String())
	}

	content := strings.Join(out, "\n")
	if !m.cfg.ShowScrollbar {
		return content
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, content, m.scrollbar(rows, height).View())
}

// scrollUnits is the scrollbar resolution of one logical line. A wrapped
// line splits its units evenly between its rows.
const scrollUnits = 1024

func lineUnits(line, row, rows int) int {
	return line*scrollUnits + row*scrollUnits/max(rows, 1)
}

// scrollbar places the thumb on the logical-line scale of ScrollRange,
// using FineLine for the part of the top line scrolled away.
func (m *Model) scrollbar(rows []VisualRow, height int) scrollbar.Bar {
	sp := m.eng.ScrollPosition()
	bar := scrollbar.New()
	bar.ThumbStyle, bar.TrackStyle = m.cfg.Style.ScrollbarThumb, m.cfg.Style.ScrollbarTrack
	bar.Height = height
	bar.Total = (m.eng.ScrollRange().MaxLine + 1) * scrollUnits
	bar.Offset = lineUnits(sp.Line, sp.FineLine, m.eng.rowsOf(sp.Line))
	end := bar.Offset
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		end = lineUnits(last.Line, last.Row+1, last.Shape.RowCount())
	}
	bar.Visible = max(end-bar.Offset, 1)
	return bar
}

// renderRow renders the visible part of one visual row and returns the
// number of cells written.
func (m *Model) renderRow(vr VisualRow, cursor buffer.Pos, sel buffer.Range, selOK bool, width int) (string, int) {
	st := m.cfg.Style
	span := vr.Span()
	shape := vr.Shape

	left, right := span.StartCell, span.EndCell
	if !m.eng.WrapMode().Wraps() {
		left = m.eng.ScrollPosition().Column
		right = left + width
	}

	hasCursor := m.focused && vr.Line == cursor.Row && shape.RowForCol(cursor.GraphemeCol) == vr.Row
	cursorCol := cursor.GraphemeCol
	eol := hasCursor && cursorCol == shape.Len()
	if eol && span.EndCol > span.StartCol && span.EndCell-left >= width {
		// No room for the end-of-line cell; mark the last grapheme instead.
		cursorCol = span.EndCol - 1
		eol = false
	}

	selected := func(col int) bool {
		if !selOK {
			return false
		}
		p := buffer.Pos{Row: vr.Line, GraphemeCol: col}
		return buffer.ComparePos(p, sel.Start) >= 0 && buffer.ComparePos(p, sel.End) < 0
	}

	var sb strings.Builder
	cells := 0
	for col := span.StartCol; col < span.EndCol; col++ {
		g := shape.Glyphs[col]
		gl, gr := g.StartCell, g.StartCell+g.Width
		sl, sr := max(gl, left), min(gr, right)
		if sl >= sr {
			continue
		}
		text := g.Text
		if sl != gl || sr != gr {
			// Partial wide grapheme: keep alignment with blanks.
			text = strings.Repeat(" ", sr-sl)
		}

		style := st.Text
		switch {
		case hasCursor && col == cursorCol:
			style = st.Cursor
			if strings.TrimSpace(text) == "" {
				// Terminals may elide trailing spaces.
				text = strings.ReplaceAll(text, " ", "\u00a0")
			}
		case selected(col):
			style = st.Selection
		}
		sb.WriteString(style.Render(text))
		cells += sr - sl
	}

	lastRow := vr.Row == shape.RowCount()-1
	if cells < width && lastRow && span.EndCell >= left {
		switch {
		case eol:
			sb.WriteString(st.Cursor.Render(" "))
			cells++
		case selected(shape.Len()) && vr.Line < m.buf.LineCount()-1:
			sb.WriteString(st.Selection.Render(" "))
			cells++
		}
	}
	return sb.String(), cells
}

// screenToDoc maps viewport-local mouse coordinates to a document position.
// Clicks in the gutter land on column 0 of the row.
func (m Model) screenToDoc(x, y int) buffer.Pos {
	gw := m.gutterWidth()
	if x < gw {
		p := m.eng.ScreenToPos(0, y)
		rows := m.eng.VisibleRows()
		if y >= 0 && y < len(rows) {
			vr := rows[y]
			return buffer.Pos{Row: vr.Line, GraphemeCol: vr.Span().StartCol}
		}
		return p
	}
	return m.eng.ScreenToPos(x-gw, y)
}
