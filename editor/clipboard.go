package editor

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/iw2rmb/quill/buffer"
)

// Clipboard provides editor-level clipboard integration.
//
// Errors never reach the user; the engine logs and ignores them.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

var _ Clipboard = SystemClipboard{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (SystemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

// SystemClipboardAvailable reports whether a system clipboard utility was
// found.
func SystemClipboardAvailable() bool { return !clipboard.Unsupported }

// MemoryClipboard is a process-local clipboard.
type MemoryClipboard struct {
	mu sync.Mutex
	s  string
	// OnChange, if set, is called after every write.
	OnChange func(string)
}

var _ Clipboard = (*MemoryClipboard)(nil)

func (c *MemoryClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s, nil
}

func (c *MemoryClipboard) WriteText(s string) error {
	c.mu.Lock()
	c.s = s
	fn := c.OnChange
	c.mu.Unlock()
	if fn != nil {
		fn(s)
	}
	return nil
}

// Copy writes the selection to the clipboard. Without a selection it does
// nothing.
func (e *Engine) Copy() {
	text := e.SelectedText()
	if text == "" || e.cfg.Clipboard == nil {
		return
	}
	if err := e.cfg.Clipboard.WriteText(text); err != nil {
		e.log.Debug("clipboard write failed", "err", err)
	}
}

// Cut copies the selection and deletes it. Read-only engines only copy.
func (e *Engine) Cut() {
	if !e.HasSelection() {
		return
	}
	e.Copy()
	if e.cfg.ReadOnly {
		return
	}
	e.deleteTowards(nil)
}

// Paste inserts the clipboard text at the cursor as its own undo step.
func (e *Engine) Paste() {
	if e.cfg.ReadOnly || e.cfg.Clipboard == nil {
		return
	}
	text, err := e.cfg.Clipboard.ReadText()
	if err != nil {
		e.log.Debug("clipboard read failed", "err", err)
		return
	}
	e.PasteText(text)
}

// PasteText inserts text as a paste: it replaces the selection, never
// merges with typing and never triggers overwrite.
func (e *Engine) PasteText(text string) {
	e.SetSelectMode(false)
	if e.cfg.ReadOnly || text == "" {
		return
	}
	text = normalizeNewlines(text)
	r, _ := e.Selection()

	var next buffer.Pos
	e.mutate(func() {
		e.buf.BreakCoalescing()
		next = e.buf.Apply(buffer.TextEdit{Range: r, Text: text})
		e.buf.BreakCoalescing()
	})
	e.afterEdit(next)
}
