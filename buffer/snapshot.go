package buffer

import "github.com/iw2rmb/quill/internal/grapheme"

// Snapshot is an immutable view of the document at one version. It shares
// row storage with the buffer and is safe to read from any goroutine.
type Snapshot struct {
	lines   [][]string
	version uint64
}

// Snapshot captures the current document state.
func (b *Buffer) Snapshot() *Snapshot {
	return &Snapshot{
		lines:   append([][]string(nil), b.lines...),
		version: b.version,
	}
}

func (s *Snapshot) Version() uint64 { return s.version }

func (s *Snapshot) LineCount() int { return len(s.lines) }

func (s *Snapshot) Line(row int) string {
	if row < 0 || row >= len(s.lines) {
		return ""
	}
	return grapheme.Join(s.lines[row])
}

func (s *Snapshot) LineLen(row int) int {
	if row < 0 || row >= len(s.lines) {
		return 0
	}
	return len(s.lines[row])
}
