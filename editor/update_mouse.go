package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// wheelStep is the number of rows or columns one wheel notch scrolls.
const wheelStep = 3

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			m.eng.ScrollBy(-wheelStep, 0)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.eng.ScrollBy(wheelStep, 0)
			return m, nil
		case tea.MouseButtonWheelLeft:
			m.eng.ScrollBy(0, -wheelStep)
			return m, nil
		case tea.MouseButtonWheelRight:
			m.eng.ScrollBy(0, wheelStep)
			return m, nil
		}
	}

	if !m.focused {
		return m, nil
	}

	// Only left button interactions move the cursor.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		m.eng.SetPosition(m.screenToDoc(msg.X, msg.Y), msg.Shift)
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		m.eng.SetPosition(m.screenToDoc(msg.X, msg.Y), true)

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, nil
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
