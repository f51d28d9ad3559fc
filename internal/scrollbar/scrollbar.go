// Package scrollbar renders a one-column vertical scrollbar.
package scrollbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar describes a scrollable range: Offset of Total positions, Visible of
// which fit on screen. Height is the number of terminal rows to draw.
type Bar struct {
	Total   int
	Visible int
	Offset  int
	Height  int

	ThumbStyle lipgloss.Style
	TrackStyle lipgloss.Style
	ThumbChar  string
	TrackChar  string
}

// New returns a bar with default characters and styles.
func New() Bar {
	return Bar{
		ThumbChar:  " ",
		TrackChar:  "│",
		ThumbStyle: lipgloss.NewStyle().Background(lipgloss.Color("244")),
		TrackStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// Thumb returns the first row and the height of the thumb. When everything
// is visible the thumb fills the track.
func (b Bar) Thumb() (top, size int) {
	h := b.Height
	if h <= 0 {
		return 0, 0
	}
	total := max(b.Total, 0)
	visible := max(b.Visible, 1)
	if total <= visible {
		return 0, h
	}

	size = h * visible / total
	size = min(max(size, 1), h)

	maxOffset := total - visible
	offset := min(max(b.Offset, 0), maxOffset)
	track := h - size
	if track > 0 {
		top = offset * track / maxOffset
	}
	return min(top, track), size
}

// View renders Height rows separated by newlines.
func (b Bar) View() string {
	if b.Height <= 0 {
		return ""
	}
	top, size := b.Thumb()

	// lipgloss drops background sequences on plain spaces.
	thumb := b.ThumbChar
	if thumb == " " {
		thumb = "\u00a0"
	}
	track := b.TrackChar
	if track == " " {
		track = "\u00a0"
	}
	thumb = b.ThumbStyle.Render(thumb)
	track = b.TrackStyle.Render(track)

	var sb strings.Builder
	for i := range b.Height {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if i >= top && i < top+size {
			sb.WriteString(thumb)
		} else {
			sb.WriteString(track)
		}
	}
	return sb.String()
}
