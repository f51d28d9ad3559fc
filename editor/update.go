package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case SearchDoneMsg:
		if msg.Task == m.search {
			m.search = nil
		}
		m.eng.ApplySearch(msg.Task)
	}
	m.syncViewSize()
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.eng.PasteText(string(msg.Runes))
		return m, nil
	}

	km := &m.cfg.KeyMap
	for _, ka := range km.actions() {
		if !key.Matches(msg, *ka.binding) {
			continue
		}
		switch ka.action.Kind {
		case ActionFindNext, ActionFindPrevious:
			q := m.eng.LastQuery()
			if q.Text == "" {
				return m, nil
			}
			q.Backward = ka.action.Kind == ActionFindPrevious
			return m.Search(q)
		default:
			m.eng.Do(ka.action)
			return m, nil
		}
	}

	switch {
	case msg.Type == tea.KeySpace:
		m.eng.InsertText(" ")
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		m.eng.InsertText(string(msg.Runes))
	}
	return m, nil
}
