package buffer

type editRecord struct {
	start    Pos
	deleted  string
	inserted string
}

type historyStep struct {
	id    uint64
	edits []editRecord
}

type historyState struct {
	undo []historyStep
	redo []historyStep

	nextID  uint64
	cleanID uint64

	// typing coalescing
	coalescing  bool
	coalesceEnd Pos

	groupDepth int
	group      *historyStep
	open       []*UndoGroup
}

// UndoGroup coalesces every edit made while it is open into a single undo
// step. Groups nest; the step is committed when the outermost group closes.
type UndoGroup struct {
	b      *Buffer
	closed bool
}

// BeginGroup opens an undo group. Callers must Close it.
func (b *Buffer) BeginGroup() *UndoGroup {
	b.hist.groupDepth++
	b.hist.coalescing = false
	g := &UndoGroup{b: b}
	b.hist.open = append(b.hist.open, g)
	return g
}

// Close ends the group. Closing twice is a no-op.
func (g *UndoGroup) Close() {
	if g == nil || g.closed {
		return
	}
	g.closed = true
	open := g.b.hist.open
	for i, o := range open {
		if o == g {
			g.b.hist.open = append(open[:i], open[i+1:]...)
			break
		}
	}
	g.b.endGroup()
}

// Closed reports whether Close has been called.
func (g *UndoGroup) Closed() bool { return g == nil || g.closed }

func (b *Buffer) endGroup() {
	if b.hist.groupDepth == 0 {
		return
	}
	b.hist.groupDepth--
	if b.hist.groupDepth > 0 {
		return
	}
	step := b.hist.group
	b.hist.group = nil
	b.hist.coalescing = false
	if step != nil && len(step.edits) > 0 {
		b.pushStep(*step)
	}
}

// InGroup reports whether an undo group is open.
func (b *Buffer) InGroup() bool { return b.hist.groupDepth > 0 }

// BreakCoalescing makes the next edit start a fresh undo step.
func (b *Buffer) BreakCoalescing() { b.hist.coalescing = false }

func (b *Buffer) recordUndo(records []editRecord, typing bool) {
	if b.opt.HistoryLimit < 0 {
		return
	}
	h := &b.hist

	if h.groupDepth > 0 {
		if h.group == nil {
			h.nextID++
			h.group = &historyStep{id: h.nextID}
		}
		h.group.edits = append(h.group.edits, records...)
		h.redo = nil
		return
	}

	end := EndOfInsert(records[len(records)-1].start, records[len(records)-1].inserted)
	if typing && h.coalescing && len(h.undo) > 0 && records[0].start == h.coalesceEnd &&
		h.undo[len(h.undo)-1].id != h.cleanID {
		top := &h.undo[len(h.undo)-1]
		top.edits = append(top.edits, records...)
		h.redo = nil
		h.coalesceEnd = end
		return
	}

	h.nextID++
	b.pushStep(historyStep{id: h.nextID, edits: records})
	h.coalescing = typing
	h.coalesceEnd = end
}

func (b *Buffer) pushStep(step historyStep) {
	h := &b.hist
	h.undo = append(h.undo, step)
	if limit := b.opt.HistoryLimit; len(h.undo) > limit {
		h.undo = h.undo[len(h.undo)-limit:]
	}
	h.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 || b.hist.group != nil }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo reverts the most recent step and returns where the cursor belongs:
// the end of the last restored text. An open undo group is closed first.
func (b *Buffer) Undo() (Pos, bool) {
	b.flushGroups()
	h := &b.hist
	if len(h.undo) == 0 {
		return Pos{}, false
	}
	h.coalescing = false

	i := len(h.undo) - 1
	step := h.undo[i]
	h.undo = h.undo[:i]

	change := b.beginChange(ChangeSourceHistory)
	var at Pos
	for j := len(step.edits) - 1; j >= 0; j-- {
		rec := step.edits[j]
		r := Range{Start: rec.start, End: EndOfInsert(rec.start, rec.inserted)}
		next, applied, changed := b.replaceRange(r, rec.deleted)
		at = next
		if changed {
			change.addAppliedEdit(applied)
		}
	}
	h.redo = append(h.redo, step)
	b.commitChange(change)
	return b.ClampPos(at), true
}

// Redo re-applies the most recently undone step.
func (b *Buffer) Redo() (Pos, bool) {
	b.flushGroups()
	h := &b.hist
	if len(h.redo) == 0 {
		return Pos{}, false
	}
	h.coalescing = false

	i := len(h.redo) - 1
	step := h.redo[i]
	h.redo = h.redo[:i]

	change := b.beginChange(ChangeSourceHistory)
	var at Pos
	for _, rec := range step.edits {
		r := Range{Start: rec.start, End: EndOfInsert(rec.start, rec.deleted)}
		next, applied, changed := b.replaceRange(r, rec.inserted)
		at = next
		if changed {
			change.addAppliedEdit(applied)
		}
	}
	h.undo = append(h.undo, step)
	b.commitChange(change)
	return b.ClampPos(at), true
}

// flushGroups ends every open group. Handles still held by callers are
// marked closed so a late Close cannot end a group opened afterwards.
func (b *Buffer) flushGroups() {
	for _, g := range b.hist.open {
		g.closed = true
	}
	b.hist.open = nil
	for b.hist.groupDepth > 0 {
		b.endGroup()
	}
}

// MarkClean records the current history position as unmodified.
func (b *Buffer) MarkClean() {
	b.hist.coalescing = false
	b.hist.cleanID = b.topStepID()
}

// Modified reports whether the document differs from the last MarkClean
// point (or from its initial text).
func (b *Buffer) Modified() bool {
	return b.topStepID() != b.hist.cleanID || b.hist.group != nil
}

func (b *Buffer) topStepID() uint64 {
	if len(b.hist.undo) == 0 {
		return 0
	}
	return b.hist.undo[len(b.hist.undo)-1].id
}
