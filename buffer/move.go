package buffer

import "github.com/iw2rmb/quill/internal/grapheme"

// Low-level cursor motions. Each takes and returns a clamped position and
// never mutates the buffer.

// PrevGrapheme moves one grapheme left, crossing to the end of the previous
// line at column 0.
func (b *Buffer) PrevGrapheme(p Pos) Pos {
	p = b.ClampPos(p)
	if p.GraphemeCol > 0 {
		return Pos{Row: p.Row, GraphemeCol: p.GraphemeCol - 1}
	}
	if p.Row == 0 {
		return p
	}
	return Pos{Row: p.Row - 1, GraphemeCol: len(b.lines[p.Row-1])}
}

// NextGrapheme moves one grapheme right, crossing to the start of the next
// line at end of line.
func (b *Buffer) NextGrapheme(p Pos) Pos {
	p = b.ClampPos(p)
	if p.GraphemeCol < len(b.lines[p.Row]) {
		return Pos{Row: p.Row, GraphemeCol: p.GraphemeCol + 1}
	}
	if p.Row == len(b.lines)-1 {
		return p
	}
	return Pos{Row: p.Row + 1, GraphemeCol: 0}
}

// WordLeft moves to the start of the previous word. At column 0 it moves to
// the end of the previous line.
func (b *Buffer) WordLeft(p Pos) Pos {
	p = b.ClampPos(p)
	if p.GraphemeCol == 0 {
		return b.PrevGrapheme(p)
	}
	return Pos{Row: p.Row, GraphemeCol: prevWordBoundary(b.lines[p.Row], p.GraphemeCol)}
}

// WordRight moves past the end of the next word. At end of line it moves to
// the start of the next line.
func (b *Buffer) WordRight(p Pos) Pos {
	p = b.ClampPos(p)
	if p.GraphemeCol == len(b.lines[p.Row]) {
		return b.NextGrapheme(p)
	}
	return Pos{Row: p.Row, GraphemeCol: nextWordBoundary(b.lines[p.Row], p.GraphemeCol)}
}

func (b *Buffer) LineStart(p Pos) Pos {
	p = b.ClampPos(p)
	return Pos{Row: p.Row}
}

func (b *Buffer) LineEnd(p Pos) Pos {
	p = b.ClampPos(p)
	return Pos{Row: p.Row, GraphemeCol: len(b.lines[p.Row])}
}

// FirstNonBlank returns the first non-whitespace column of p's line, or
// column 0 when the line is blank.
func (b *Buffer) FirstNonBlank(p Pos) Pos {
	p = b.ClampPos(p)
	line := b.lines[p.Row]
	for i, g := range line {
		if !grapheme.IsSpace(g) {
			return Pos{Row: p.Row, GraphemeCol: i}
		}
	}
	return Pos{Row: p.Row}
}

func (b *Buffer) DocStart() Pos { return Pos{} }

func (b *Buffer) DocEnd() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, GraphemeCol: len(b.lines[last])}
}

type wordClass int

const (
	classSpace wordClass = iota
	classWord
	classPunct
)

func classify(g string) wordClass {
	switch {
	case grapheme.IsSpace(g):
		return classSpace
	case grapheme.IsWord(g):
		return classWord
	default:
		return classPunct
	}
}

// Word boundary rules:
// - skip whitespace, then skip a run of the same class (word or punctuation)
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && classify(line[i-1]) == classSpace {
		i--
	}
	if i == 0 {
		return 0
	}
	c := classify(line[i-1])
	for i > 0 && classify(line[i-1]) == c {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && classify(line[i]) == classSpace {
		i++
	}
	if i == len(line) {
		return i
	}
	c := classify(line[i])
	for i < len(line) && classify(line[i]) == c {
		i++
	}
	return i
}
