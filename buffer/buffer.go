package buffer

import (
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables history
}

// Buffer is the document: grapheme lines, undo history and line markers.
//
// Buffer is not safe for concurrent use. Readers on other goroutines must
// work from a Snapshot.
type Buffer struct {
	lines   [][]string
	version uint64

	opt  Options
	hist historyState

	markers     []*LineMarker
	subscribers map[int]func(Change)
	nextSubID   int
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, g := range line {
			sb.WriteString(g)
		}
	}
	return sb.String()
}

// Version increments on every effective text mutation.
func (b *Buffer) Version() uint64 { return b.version }

// LineCount returns the number of logical lines; never less than 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// LineLen returns the grapheme length of row.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// ByteCol returns the UTF-8 byte offset of p within its line.
func (b *Buffer) ByteCol(p Pos) int {
	p = b.ClampPos(p)
	return grapheme.ByteLen(b.lines[p.Row][:p.GraphemeCol])
}

// GraphemeAt returns the cluster at p, or "" at end of line.
func (b *Buffer) GraphemeAt(p Pos) string {
	p = b.ClampPos(p)
	line := b.lines[p.Row]
	if p.GraphemeCol >= len(line) {
		return ""
	}
	return line[p.GraphemeCol]
}

func (b *Buffer) ClampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.LineLen)
}

// TextInRange returns the text covered by r after clamping.
func (b *Buffer) TextInRange(r Range) string {
	return textForLinesRange(b.lines, NormalizeRange(ClampRange(r, len(b.lines), b.LineLen)))
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
