package buffer

import "github.com/iw2rmb/autolist/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

// Move moves the cursor. Typing style follows the text before the new
// cursor position.
func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := clampInt(b.moveCursor(prevCursor, m), 0, len(b.clusters))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && prevSel == nextSel {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.syncTypingStyle()
	b.version++
}

func (b *Buffer) moveCursor(off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return off - 1
	case DirRight:
		return off + 1
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	start := b.rowStart(off)
	line := b.clusters[start : start+b.rowLen(start)]
	col := off - start

	switch dir {
	case DirLeft:
		return start + prevWordBoundary(line, col)
	case DirRight:
		return start + nextWordBoundary(line, col)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	p := b.PosFromOffset(off)
	start := b.rowStart(off)

	switch dir {
	case DirHome:
		return start
	case DirEnd:
		return start + b.rowLen(start)
	case DirUp:
		if p.Row == 0 {
			return off
		}
		return b.OffsetFromPos(Pos{Row: p.Row - 1, GraphemeCol: p.GraphemeCol})
	case DirDown:
		next := b.OffsetFromPos(Pos{Row: p.Row + 1})
		if b.PosFromOffset(next).Row == p.Row {
			return off
		}
		return b.OffsetFromPos(Pos{Row: p.Row + 1, GraphemeCol: p.GraphemeCol})
	default:
		return off
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(b.clusters)
	default:
		return off
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - paragraph separators are hard boundaries (so this operates on one row)
func prevWordBoundary(line []string, col int) int {
	col = clampInt(col, 0, len(line))
	i := col
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	col = clampInt(col, 0, len(line))
	i := col
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
