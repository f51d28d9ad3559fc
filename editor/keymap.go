package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	ShiftWordLeft, ShiftWordRight             key.Binding
	Home, End                                 key.Binding
	ShiftHome, ShiftEnd                       key.Binding
	DocStart, DocEnd                          key.Binding
	PageUp, PageDown                          key.Binding
	ShiftPageUp, ShiftPageDown                key.Binding

	Backspace, Delete               key.Binding
	DeleteWordLeft, DeleteWordRight key.Binding
	Enter                           key.Binding
	Indent, Outdent                 key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
	SelectAll        key.Binding

	ToggleOverwrite  key.Binding
	ToggleSelectMode key.Binding
	FindNext         key.Binding
	FindPrevious     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:       key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight:      key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),
		ShiftWordLeft:  key.NewBinding(key.WithKeys("alt+shift+left", "ctrl+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		ShiftWordRight: key.NewBinding(key.WithKeys("alt+shift+right", "ctrl+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to line start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to line end")),
		DocStart:  key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:    key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		PageUp:        key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		ShiftPageUp:   key.NewBinding(key.WithKeys("shift+pgup"), key.WithHelp("shift+pgup", "select page up")),
		ShiftPageDown: key.NewBinding(key.WithKeys("shift+pgdown"), key.WithHelp("shift+pgdn", "select page down")),

		Backspace:       key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:          key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		DeleteWordLeft:  key.NewBinding(key.WithKeys("alt+backspace", "ctrl+w"), key.WithHelp("alt+backspace", "delete word left")),
		DeleteWordRight: key.NewBinding(key.WithKeys("alt+delete", "alt+d"), key.WithHelp("alt+del", "delete word right")),
		Enter:           key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Indent:          key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Outdent:         key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "outdent")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		ToggleOverwrite:  key.NewBinding(key.WithKeys("insert"), key.WithHelp("ins", "overwrite")),
		ToggleSelectMode: key.NewBinding(key.WithKeys("ctrl+@"), key.WithHelp("ctrl+space", "select mode")),
		FindNext:         key.NewBinding(key.WithKeys("f3", "ctrl+g"), key.WithHelp("f3", "find next")),
		FindPrevious:     key.NewBinding(key.WithKeys("shift+f3", "ctrl+r"), key.WithHelp("shift+f3", "find previous")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0 && len(km.Enter.Keys()) == 0
}

type keyAction struct {
	binding *key.Binding
	action  Action
}

// actions lists bindings in match order. Extended variants come first so
// that they win over plain bindings sharing a key.
func (km *KeyMap) actions() []keyAction {
	return []keyAction{
		{&km.ShiftLeft, Action{Kind: ActionCharacterLeft, Extend: true}},
		{&km.ShiftRight, Action{Kind: ActionCharacterRight, Extend: true}},
		{&km.ShiftUp, Action{Kind: ActionUp, Extend: true}},
		{&km.ShiftDown, Action{Kind: ActionDown, Extend: true}},
		{&km.ShiftWordLeft, Action{Kind: ActionWordLeft, Extend: true}},
		{&km.ShiftWordRight, Action{Kind: ActionWordRight, Extend: true}},
		{&km.ShiftHome, Action{Kind: ActionStartIndentedText, Extend: true}},
		{&km.ShiftEnd, Action{Kind: ActionEndOfLine, Extend: true}},
		{&km.ShiftPageUp, Action{Kind: ActionPageUp, Extend: true}},
		{&km.ShiftPageDown, Action{Kind: ActionPageDown, Extend: true}},

		{&km.Left, Action{Kind: ActionCharacterLeft}},
		{&km.Right, Action{Kind: ActionCharacterRight}},
		{&km.Up, Action{Kind: ActionUp}},
		{&km.Down, Action{Kind: ActionDown}},
		{&km.WordLeft, Action{Kind: ActionWordLeft}},
		{&km.WordRight, Action{Kind: ActionWordRight}},
		{&km.Home, Action{Kind: ActionStartIndentedText}},
		{&km.End, Action{Kind: ActionEndOfLine}},
		{&km.DocStart, Action{Kind: ActionStartOfDocument}},
		{&km.DocEnd, Action{Kind: ActionEndOfDocument}},
		{&km.PageUp, Action{Kind: ActionPageUp}},
		{&km.PageDown, Action{Kind: ActionPageDown}},

		{&km.DeleteWordLeft, Action{Kind: ActionDeleteWordLeft}},
		{&km.DeleteWordRight, Action{Kind: ActionDeleteWordRight}},
		{&km.Backspace, Action{Kind: ActionBackspace}},
		{&km.Delete, Action{Kind: ActionDelete}},
		{&km.Enter, Action{Kind: ActionNewline}},
		{&km.Outdent, Action{Kind: ActionOutdent}},
		{&km.Indent, Action{Kind: ActionIndent}},

		{&km.Undo, Action{Kind: ActionUndo}},
		{&km.Redo, Action{Kind: ActionRedo}},
		{&km.Copy, Action{Kind: ActionCopy}},
		{&km.Cut, Action{Kind: ActionCut}},
		{&km.Paste, Action{Kind: ActionPaste}},
		{&km.SelectAll, Action{Kind: ActionSelectAll}},
		{&km.ToggleOverwrite, Action{Kind: ActionToggleOverwrite}},
		{&km.ToggleSelectMode, Action{Kind: ActionToggleSelectMode}},
		{&km.FindNext, Action{Kind: ActionFindNext}},
		{&km.FindPrevious, Action{Kind: ActionFindPrevious}},
	}
}
