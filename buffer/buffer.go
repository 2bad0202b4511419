package buffer

import (
	"strings"

	"github.com/iw2rmb/autolist/internal/grapheme"
)

type Options struct {
	// TypingStyle is applied to typed text until a cursor move picks up
	// the style of the surrounding text.
	TypingStyle *ParagraphStyle
}

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer is the document state: clusters with their paragraph styles,
// cursor, selection, and the style newly typed text inherits.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	clusters []string
	styles   []*ParagraphStyle
	version  uint64

	cursor int
	sel    selectionState
	typing *ParagraphStyle

	opt Options

	observers     []observer
	nextObserver  int
	lastChange    EditEvent
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	clusters := grapheme.Split(text)
	return &Buffer{
		clusters: clusters,
		styles:   make([]*ParagraphStyle, len(clusters)),
		typing:   opt.TypingStyle,
		opt:      opt,
	}
}

func (b *Buffer) Text() string {
	return grapheme.Join(b.clusters)
}

// Len returns the document length in clusters.
func (b *Buffer) Len() int { return len(b.clusters) }

// TextIn returns the text covered by r, clamped to the document.
func (b *Buffer) TextIn(r Range) string {
	r = b.clampRange(r)
	return grapheme.Join(b.clusters[r.Location:r.End()])
}

func (b *Buffer) Version() uint64 { return b.version }

// Cursor returns the caret offset.
func (b *Buffer) Cursor() int { return b.cursor }

// CursorPos returns the caret as a row/column position.
func (b *Buffer) CursorPos() Pos { return b.PosFromOffset(b.cursor) }

func (b *Buffer) SetCursor(off int) {
	next := clampInt(off, 0, len(b.clusters))
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.syncTypingStyle()
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return RangeBetween(b.sel.anchor, b.sel.end), true
}

// SetSelection selects r and places the cursor at its end. An empty r
// clears the selection.
func (b *Buffer) SetSelection(r Range) {
	r = b.clampRange(r)
	prev, prevOK := b.Selection()
	if r.IsEmpty() {
		if !prevOK {
			return
		}
		b.sel = selectionState{}
		b.version++
		return
	}
	if prevOK && prev == r && b.cursor == r.End() {
		return
	}
	b.sel = selectionState{active: true, anchor: r.Location, end: r.End()}
	b.cursor = r.End()
	b.syncTypingStyle()
	b.version++
}

func (b *Buffer) ClearSelection() {
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

// TypingStyle returns the paragraph style that text inserted at the cursor
// will carry.
func (b *Buffer) TypingStyle() *ParagraphStyle { return b.typing }

// SetTypingStyle sets the style applied to subsequently typed text.
func (b *Buffer) SetTypingStyle(s *ParagraphStyle) { b.typing = s }

// syncTypingStyle picks up the style of the cluster before the cursor, or
// the first cluster when the cursor is at the document start.
func (b *Buffer) syncTypingStyle() {
	switch {
	case len(b.clusters) == 0:
		b.typing = b.opt.TypingStyle
	case b.cursor > 0:
		b.typing = b.styles[b.cursor-1]
	default:
		b.typing = b.styles[0]
	}
}

func (b *Buffer) clampRange(r Range) Range {
	return ClampRange(r, len(b.clusters))
}

// String is a debugging aid that shows text with visible tabs.
func (b *Buffer) String() string {
	return strings.ReplaceAll(b.Text(), "\t", `\t`)
}
