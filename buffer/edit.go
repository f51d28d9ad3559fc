package buffer

import (
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// Insert inserts text at p and returns the position just after it.
// Consecutive single-grapheme insertions continuing the previous one are
// coalesced into one undo step until BreakCoalescing is called.
func (b *Buffer) Insert(p Pos, text string) Pos {
	p = b.ClampPos(p)
	if text == "" {
		return p
	}
	typing := !strings.Contains(text, "\n") && grapheme.Count(text) == 1
	return b.edit(ChangeSourceLocal, []TextEdit{{Range: Range{Start: p, End: p}, Text: text}}, typing, p)
}

// Delete removes r and returns the position where it started.
func (b *Buffer) Delete(r Range) Pos {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.LineLen))
	return b.edit(ChangeSourceLocal, []TextEdit{{Range: r}}, false, r.Start)
}

// Replace replaces r with text and returns the position after the new text.
func (b *Buffer) Replace(r Range, text string) Pos {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.LineLen))
	return b.edit(ChangeSourceLocal, []TextEdit{{Range: r, Text: text}}, false, r.Start)
}

// Apply applies a sequence of edits as one undo step. Each edit's range is
// interpreted against the buffer state at the time that edit is applied.
// It returns the end of the last effective edit.
func (b *Buffer) Apply(edits ...TextEdit) Pos {
	return b.edit(ChangeSourceLocal, edits, false, Pos{})
}

// ApplyRemote applies edits that originate outside the local editor, such as
// streamed input. They are recorded in history like local edits but always
// start a fresh undo step.
func (b *Buffer) ApplyRemote(edits ...TextEdit) Pos {
	return b.edit(ChangeSourceRemote, edits, false, Pos{})
}

func (b *Buffer) edit(source ChangeSource, edits []TextEdit, typing bool, fallback Pos) Pos {
	change := b.beginChange(source)
	records := make([]editRecord, 0, len(edits))
	last := fallback

	for _, e := range edits {
		next, applied, changed := b.replaceRange(e.Range, e.Text)
		if !changed {
			continue
		}
		last = next
		change.addAppliedEdit(applied)
		records = append(records, editRecord{
			start:    applied.RangeBefore.Start,
			deleted:  applied.DeletedText,
			inserted: applied.InsertText,
		})
	}
	if len(records) == 0 {
		return b.ClampPos(last)
	}

	b.recordUndo(records, typing)
	b.commitChange(change)
	return last
}

func (b *Buffer) replaceRange(r Range, text string) (next Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.LineLen))
	if r.IsEmpty() && text == "" {
		return r.Start, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol
	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return r.End, AppliedEdit{}, false
	}

	prefix := append([]string(nil), b.lines[startRow][:startCol]...)
	suffix := append([]string(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	ins := make([][]string, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, grapheme.Split(p))
	}

	repl := make([][]string, 0, len(ins))
	if len(ins) == 1 {
		line := make([]string, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		next = Pos{Row: startRow, GraphemeCol: len(prefix) + len(ins[0])}
	} else {
		first := make([]string, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, append([]string(nil), ins[i]...))
		}

		lastPart := ins[len(ins)-1]
		last := make([]string, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		next = Pos{Row: startRow + len(ins) - 1, GraphemeCol: len(lastPart)}
	}

	// Row slices are never mutated in place once published, so snapshots
	// may keep sharing them.
	out := make([][]string, 0, len(b.lines)-(endRow-startRow+1)+len(repl))
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)

	b.lines = out
	b.shiftMarkers(r, len(ins)-1)

	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: next},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return next, applied, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	startRow := r.Start.Row
	endRow := r.End.Row
	startCol := r.Start.GraphemeCol
	endCol := r.End.GraphemeCol

	if startRow == endRow {
		return grapheme.Join(lines[startRow][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == startRow {
			partStart = startCol
		}
		if row == endRow {
			partEnd = endCol
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
