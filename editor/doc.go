// Package editor keeps a text cursor, a selection and a scrolling viewport
// consistent with a buffer.
//
// Engine is the headless core: it owns the cursor and anchor, the scroll
// position (a line marker plus a wrapped-row offset), command dispatch and
// search reconciliation, and reports changes through Events. Model wraps an
// Engine as a Bubble Tea component with key bindings, mouse scrolling and
// lipgloss rendering.
package editor
