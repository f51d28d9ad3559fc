package editor

import (
	"io"
	"log/slog"

	"github.com/iw2rmb/quill/internal/grapheme"
	"github.com/iw2rmb/quill/layout"
)

// Config configures the editor Engine and Model.
type Config struct {
	// Initial text for the internal buffer. Ignored by NewEngine.
	Text string

	TabWidth int
	// TabsAsSpaces makes Tab and indent insert spaces instead of '\t'.
	TabsAsSpaces bool
	WrapMode     layout.WrapMode
	// Shaper overrides the default terminal shaper.
	Shaper layout.Shaper

	// Rendering options.
	ShowLineNums  bool
	ShowScrollbar bool
	Style         Style
	KeyMap        KeyMap

	// Forwarded to buffer.Options.
	HistoryLimit int

	ReadOnly bool

	Clipboard Clipboard
	Events    Events
	Hooks     Hooks
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
	// SearchWorkers bounds concurrent background searches.
	SearchWorkers int
}

func (c Config) normalized() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = grapheme.DefaultTabWidth
	}
	if c.Shaper == nil {
		c.Shaper = layout.Default{}
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
