package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/editor"
)

var (
	statusStyle  = lipgloss.NewStyle().Reverse(true)
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	promptStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// findBoxWidth is the widest the floating find prompt gets.
const findBoxWidth = 40

// app hosts the editor with a status line and a floating find prompt.
type app struct {
	editor editor.Model
	log    *slog.Logger
	path   string

	finding bool
	find    textinput.Model

	width   int
	message string
}

func newApp(opts options, text string, clip editor.Clipboard, logger *slog.Logger) app {
	cfg := editor.Config{
		Text:          text,
		TabWidth:      opts.tabWidth,
		TabsAsSpaces:  opts.tabsAsSpaces,
		WrapMode:      opts.wrap,
		ShowLineNums:  opts.lineNumbers,
		ShowScrollbar: opts.scrollbar,
		Style:         editor.DefaultStyle(),
		ReadOnly:      opts.readOnly,
		Clipboard:     clip,
		Logger:        logger,
		Events: editor.Events{
			ModifiedChanged: func(modified bool) {
				logger.Debug("modified changed", "modified", modified)
			},
			SearchApplied: func(r buffer.Range, found bool) {
				logger.Debug("search applied", "found", found, "start", r.Start, "end", r.End)
			},
		},
	}

	find := textinput.New()
	find.Prompt = "find: "
	find.CharLimit = 256

	return app{
		editor: editor.New(cfg),
		log:    logger,
		path:   opts.path,
		find:   find,
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.find.Width = max(min(msg.Width, findBoxWidth)-len(a.find.Prompt)-promptStyle.GetHorizontalFrameSize()-1, 1)
		a.editor = a.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return a, nil
	case tea.KeyMsg:
		if a.finding {
			return a.updateFind(msg)
		}
		switch msg.String() {
		case "ctrl+q":
			return a, tea.Quit
		case "ctrl+s":
			a.message = a.save()
			return a, nil
		case "ctrl+f":
			a.finding = true
			a.find.SetValue(a.editor.Engine().LastQuery().Text)
			a.editor = a.editor.Blur()
			cmd := a.find.Focus()
			return a, cmd
		}
		a.message = ""
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) updateFind(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editor.CancelSearch()
		return a.closeFind(), nil
	case "enter":
		q := a.editor.Engine().LastQuery()
		q.Text = a.find.Value()
		q.Backward = false
		q.Wrap = true
		a = a.closeFind()
		if q.Text == "" {
			return a, nil
		}
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Search(q)
		return a, cmd
	}
	var cmd tea.Cmd
	a.find, cmd = a.find.Update(msg)
	return a, cmd
}

func (a app) closeFind() app {
	a.finding = false
	a.find.Blur()
	a.editor = a.editor.Focus()
	return a
}

// save writes the buffer back to its file.
func (a app) save() string {
	if a.path == "" {
		return "no file name"
	}
	b := a.editor.Buffer()
	if err := os.WriteFile(a.path, []byte(b.Text()), 0o644); err != nil {
		a.log.Error("save failed", "path", a.path, "err", err)
		return fmt.Sprintf("save failed: %v", err)
	}
	a.editor.Engine().MarkClean()
	a.log.Info("saved", "path", a.path, "version", b.Version())
	return "saved " + a.path
}

func (a app) View() string {
	view := a.editor.View()
	if a.finding {
		view = overlay.Composite(promptStyle.Render(a.find.View()), view, overlay.Right, overlay.Top, 0, 0)
	}
	return view + "\n" + a.statusLine()
}

func (a app) statusLine() string {
	eng := a.editor.Engine()
	pos := eng.Position()

	name := a.path
	if name == "" {
		name = "[scratch]"
	}
	if eng.Modified() {
		name += " [+]"
	}
	mode := "INS"
	if eng.Overwrite() {
		mode = "OVR"
	}
	if eng.SelectMode() {
		mode += " SEL"
	}
	if a.finding {
		mode += " FIND"
	}
	if a.editor.Searching() {
		mode += " …"
	}
	status := fmt.Sprintf(" %s  Ln %d, Col %d  %s  %s ", name, pos.Row+1, pos.GraphemeCol+1, eng.WrapMode(), mode)
	line := statusStyle.Render(status)
	if a.message != "" {
		line += " " + messageStyle.Render(a.message)
	}
	return lipgloss.NewStyle().MaxWidth(a.width).Render(line)
}
