package editor

import "github.com/iw2rmb/quill/buffer"

// CursorEvent reports the cursor after it moved.
type CursorEvent struct {
	Row int
	// Col is the grapheme column.
	Col int
	// VisualCol is the cell offset in the unwrapped line.
	VisualCol int
	// ByteCol is the UTF-8 byte offset in the line.
	ByteCol int
}

// ScrollPosition is the top-left of the viewport. FineLine counts wrapped
// rows of Line hidden above the viewport.
type ScrollPosition struct {
	Column   int
	Line     int
	FineLine int
}

// ScrollRange is the largest meaningful scroll position.
type ScrollRange struct {
	MaxColumn int
	MaxLine   int
}

// CommandState summarises which commands currently make sense, for hosts
// that enable or disable menu entries.
type CommandState struct {
	CanUndo      bool
	CanRedo      bool
	HasSelection bool
	CanPaste     bool
	ReadOnly     bool
}

// Events holds optional notification callbacks. Each fires only when the
// reported value changed. Callbacks run synchronously on the goroutine that
// drives the engine.
type Events struct {
	CursorPositionChanged func(CursorEvent)
	ScrollPositionChanged func(ScrollPosition)
	ScrollRangeChanged    func(ScrollRange)
	ModifiedChanged       func(modified bool)
	SelectModeChanged     func(on bool)
	OverwriteModeChanged  func(on bool)
	// SearchApplied fires after a search result was reconciled with the
	// cursor. found is false for misses.
	SearchApplied func(r buffer.Range, found bool)
}

// Hooks lets hosts plug optional behaviour into the engine.
type Hooks interface {
	// ClearAdvancedSelection drops host-owned selection state (for example
	// block selections) when the engine collapses its own selection.
	ClearAdvancedSelection()
	// UpdateCommands is called when the command state changed.
	UpdateCommands(CommandState)
}
