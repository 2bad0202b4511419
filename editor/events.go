package editor

import "github.com/iw2rmb/autolist/buffer"

type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Edit is the latest text mutation since the previous event, including
	// rewrites made by the autoformat engine. HasEdit is false for cursor
	// and selection changes.
	Edit    buffer.EditEvent
	HasEdit bool

	// Simplest payload; hosts can diff if needed.
	Text string
}

func buildChangeEvent(b *buffer.Buffer, since uint64) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.CursorPos(),
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if edit, ok := b.LastChange(); ok && edit.VersionAfter > since {
		ev.Edit = edit
		ev.HasEdit = true
	}
	return ev
}
