package buffer

// EditEvent describes one effective text mutation.
//
// Range covers the inserted text in post-edit coordinates. ChangeInLength
// is the inserted length minus the deleted length.
type EditEvent struct {
	Range          Range
	ChangeInLength int
	VersionBefore  uint64
	VersionAfter   uint64
	InsertText     string
	DeletedText    string
}

// ReplacedRange returns the span the edit replaced, in pre-edit coordinates.
func (e EditEvent) ReplacedRange() Range {
	return Range{Location: e.Range.Location, Length: e.Range.Length - e.ChangeInLength}
}

type observer struct {
	id int
	fn func(EditEvent)
}

// OnEdit registers fn to run after every effective text mutation.
//
// Observers run synchronously, in registration order, before the mutating
// method returns. An observer may mutate the buffer; the resulting nested
// notifications are delivered inline as well.
func (b *Buffer) OnEdit(fn func(EditEvent)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	b.nextObserver++
	id := b.nextObserver
	b.observers = append(b.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range b.observers {
			if o.id == id {
				b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
				return
			}
		}
	}
}

// LastChange returns the most recent effective text mutation.
func (b *Buffer) LastChange() (EditEvent, bool) {
	if !b.hasLastChange {
		return EditEvent{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) commitEdit(ev EditEvent) {
	b.version++
	ev.VersionAfter = b.version
	b.lastChange = ev
	b.hasLastChange = true

	observers := append([]observer(nil), b.observers...)
	for _, o := range observers {
		o.fn(ev)
	}
}
