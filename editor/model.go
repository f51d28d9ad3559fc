package editor

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/layout"
	"github.com/iw2rmb/quill/search"
)

// SearchDoneMsg delivers a finished background search to Update.
type SearchDoneMsg struct {
	Task *search.Task
}

// Model is a Bubble Tea component that renders and edits a buffer through
// an Engine.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	eng *Engine

	focused bool

	// viewport frames the rows the engine reports as visible; its own
	// scrolling is unused.
	viewport viewport.Model

	search        *search.Task
	mouseDragging bool
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	buf := buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit})
	return Model{
		cfg:      cfg,
		buf:      buf,
		eng:      NewEngine(buf, cfg),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }
func (m Model) Engine() *Engine        { return m.eng }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.syncViewSize()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.mouseDragging = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetWrapMode switches wrapping and re-derives the text area size.
func (m Model) SetWrapMode(mode layout.WrapMode) Model {
	m.eng.SetWrapMode(mode)
	m.cfg.WrapMode = mode
	m.syncViewSize()
	return m
}

// Search cancels the search started by the previous call, if it is still
// running, and starts a new one in the background.
func (m Model) Search(q buffer.Query) (Model, tea.Cmd) {
	m.CancelSearch()
	task := m.eng.FindAsync(context.Background(), q)
	m.search = task
	return m, waitForSearch(task)
}

// CancelSearch cancels the in-flight search started by Search.
func (m *Model) CancelSearch() {
	if m.search != nil {
		m.search.Cancel()
		m.search = nil
	}
}

// Searching reports whether a search started by Search is in flight.
func (m Model) Searching() bool { return m.search != nil }

func waitForSearch(task *search.Task) tea.Cmd {
	return func() tea.Msg {
		<-task.Done()
		return SearchDoneMsg{Task: task}
	}
}

func (m Model) View() string {
	m.syncViewSize()
	m.viewport.SetContent(m.renderContent())
	return m.viewport.View()
}

// gutterWidth is the width of the line number column including its
// separator.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func (m Model) scrollbarWidth() int {
	if !m.cfg.ShowScrollbar {
		return 0
	}
	return 1
}

// syncViewSize hands the text area size to the engine. The gutter grows
// with the line count, so this runs on every update.
func (m Model) syncViewSize() {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth() - m.scrollbarWidth()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	m.eng.SetViewSize(max(w, 0), max(h, 0))
}

func gutterDigits(lines int) int {
	return len(strconv.Itoa(max(lines, 1)))
}
