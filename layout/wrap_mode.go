package layout

import (
	"fmt"
	"strings"
)

// WrapMode controls how long logical lines are displayed.
//
// WrapNone renders one logical line per visual row and relies on horizontal
// scrolling. WrapWord and WrapGrapheme use soft wrapping; WrapGrapheme may
// break anywhere between grapheme clusters.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)

func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "none"
	case WrapWord:
		return "word"
	case WrapGrapheme:
		return "anywhere"
	default:
		return fmt.Sprintf("WrapMode(%d)", int(m))
	}
}

// Wraps reports whether m produces soft-wrapped rows.
func (m WrapMode) Wraps() bool { return m == WrapWord || m == WrapGrapheme }

// ParseWrapMode accepts "none", "word" and "anywhere" (or "grapheme").
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "nowrap":
		return WrapNone, nil
	case "word":
		return WrapWord, nil
	case "anywhere", "grapheme":
		return WrapGrapheme, nil
	default:
		return WrapNone, fmt.Errorf("unknown wrap mode %q", s)
	}
}
