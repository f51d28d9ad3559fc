// Package grapheme holds the grapheme-cluster helpers shared by the buffer,
// layout and editor packages.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
)

// DefaultTabWidth is used wherever a non-positive tab width is supplied.
const DefaultTabWidth = 4

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// ByteLen returns the UTF-8 length of the joined clusters.
func ByteLen(clusters []string) int {
	n := 0
	for _, c := range clusters {
		n += len(c)
	}
	return n
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

// IsWord reports whether cluster starts with a letter, digit or underscore.
func IsWord(cluster string) bool {
	for _, r := range cluster {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

// TabAdvance returns the number of cells a tab occupies at visualCol.
func TabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	adv := tabWidth - visualCol%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}

// CellWidth returns the terminal cell width of cluster when drawn at
// visualCol. Zero-width clusters other than tabs report a width of 1 so every
// cluster stays addressable.
func CellWidth(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(visualCol, tabWidth)
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Fold returns the case-folded form of cluster for caseless matching.
func Fold(cluster string) string {
	return cases.Fold().String(cluster)
}
