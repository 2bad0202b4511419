package buffer

import (
	"strings"

	"github.com/iw2rmb/autolist/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
// The cursor ends up after the inserted text.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		r = Range{Location: b.cursor}
	}
	if s == "" && r.IsEmpty() {
		return
	}

	ev, changed := b.replaceRange(r, s)
	if !changed {
		return
	}
	b.cursor = ev.Range.End()
	b.sel = selectionState{}
	b.commitEdit(ev)
}

// InsertRune inserts a single rune at the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline inserts a paragraph break at the cursor, or replaces the
// active selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// ReplaceText replaces the text in r with text.
//
// A cursor before r is kept, a cursor after r shifts with the edit, and a
// cursor inside r keeps its distance from r's start, bounded by the new
// text. Any selection is cleared.
func (b *Buffer) ReplaceText(r Range, text string) {
	r = b.clampRange(r)
	ev, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = mapOffset(b.cursor, ev.ReplacedRange(), ev.Range.Length)
	b.sel = selectionState{}
	b.commitEdit(ev)
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}
	b.deleteRange(Range{Location: b.cursor - 1, Length: 1})
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor >= len(b.clusters) {
		return
	}
	b.deleteRange(Range{Location: b.cursor, Length: 1})
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.deleteRange(r)
}

func (b *Buffer) deleteRange(r Range) {
	ev, changed := b.replaceRange(r, "")
	if !changed {
		return
	}
	// Empty unless a "\r\n" was joined across the deleted span.
	b.cursor = ev.Range.End()
	b.sel = selectionState{}
	b.syncTypingStyle()
	b.commitEdit(ev)
}

// replaceRange splices text into r. Inserted clusters take the typing style.
// It does not bump the version or notify; callers finish with commitEdit.
func (b *Buffer) replaceRange(r Range, text string) (EditEvent, bool) {
	r = b.clampRange(r)
	r, text, joinedLeft := b.joinCRLF(r, text)
	ins := grapheme.Split(text)
	if r.IsEmpty() && len(ins) == 0 {
		return EditEvent{}, false
	}

	deleted := grapheme.Join(b.clusters[r.Location:r.End()])
	if deleted == text {
		return EditEvent{}, false
	}

	styles := make([]*ParagraphStyle, len(ins))
	for i := range styles {
		styles[i] = b.typing
	}
	if joinedLeft && len(styles) > 0 {
		// The "\r" absorbed from the left keeps its paragraph's style.
		styles[0] = b.styles[r.Location]
	}

	b.clusters = splice(b.clusters, r, ins)
	b.styles = splice(b.styles, r, styles)

	return EditEvent{
		Range:          Range{Location: r.Location, Length: len(ins)},
		ChangeInLength: len(ins) - r.Length,
		VersionBefore:  b.version,
		InsertText:     text,
		DeletedText:    deleted,
	}, true
}

// joinCRLF widens an edit so that a "\r" and a "\n" meeting at either edge
// end up in one "\r\n" cluster, the way they split when read as a whole.
func (b *Buffer) joinCRLF(r Range, text string) (Range, string, bool) {
	next := ""
	if r.End() < len(b.clusters) {
		next = b.clusters[r.End()]
	}

	joinedLeft := false
	if r.Location > 0 && b.clusters[r.Location-1] == "\r" &&
		(strings.HasPrefix(text, "\n") || text == "" && next == "\n") {
		r = Range{Location: r.Location - 1, Length: r.Length + 1}
		text = "\r" + text
		joinedLeft = true
	}
	if next == "\n" && strings.HasSuffix(text, "\r") {
		r.Length++
		text += "\n"
	}
	return r, text, joinedLeft
}

func splice[T any](s []T, r Range, ins []T) []T {
	out := make([]T, 0, len(s)-r.Length+len(ins))
	out = append(out, s[:r.Location]...)
	out = append(out, ins...)
	return append(out, s[r.End():]...)
}

func mapOffset(off int, r Range, insLen int) int {
	switch {
	case off < r.Location:
		return off
	case off >= r.End():
		return off + insLen - r.Length
	default:
		return r.Location + minInt(off-r.Location, insLen)
	}
}
