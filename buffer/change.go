package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	ChangeSourceRemote
	ChangeSourceHistory
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceRemote:
		return "remote"
	case ChangeSourceHistory:
		return "history"
	default:
		return "unknown"
	}
}

// AppliedEdit describes one effective edit in a change transaction.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload delivered to
// subscribers after every effective edit.
type Change struct {
	Source        ChangeSource
	VersionBefore uint64
	VersionAfter  uint64
	AppliedEdits  []AppliedEdit
}

// Subscribe registers fn to receive every effective change. The returned
// function removes the subscription.
func (b *Buffer) Subscribe(fn func(Change)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	if b.subscribers == nil {
		b.subscribers = make(map[int]func(Change))
	}
	id := b.nextSubID
	b.nextSubID++
	b.subscribers[id] = fn
	return func() { delete(b.subscribers, id) }
}

type changeBuilder struct {
	source        ChangeSource
	versionBefore uint64
	appliedEdits  []AppliedEdit
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:        source,
		versionBefore: b.version,
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if len(cb.appliedEdits) == 0 {
		return
	}
	b.version++
	ch := Change{
		Source:        cb.source,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		AppliedEdits:  cb.appliedEdits,
	}
	for _, fn := range b.subscribers {
		fn(cloneChange(ch))
	}
}

func cloneChange(in Change) Change {
	out := in
	out.AppliedEdits = append([]AppliedEdit(nil), in.AppliedEdits...)
	return out
}
