package layout

// findWordWrapBreak returns the break after the last whitespace run inside
// [start, overflow).
func findWordWrapBreak(glyphs []Glyph, start, overflow int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if overflow > len(glyphs) {
		overflow = len(glyphs)
	}
	if start >= overflow {
		return 0, false
	}

	lastBreak := -1
	i := start
	for i < overflow {
		if !glyphs[i].space {
			i++
			continue
		}
		j := i + 1
		for j < overflow && glyphs[j].space {
			j++
		}
		lastBreak = j
		i = j
	}

	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

// adjustBreakForLeadingPunctuation moves a hard break back so the next row
// does not start with punctuation, as long as the current row keeps at
// least one grapheme.
func adjustBreakForLeadingPunctuation(glyphs []Glyph, start, overflow int) int {
	end := overflow
	for end > start+1 && end < len(glyphs) && glyphs[end].punct {
		end--
	}
	return end
}
