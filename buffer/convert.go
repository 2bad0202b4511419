package buffer

// PosFromOffset converts a cluster offset into a row/column position.
// Offsets outside the document are clamped.
func (b *Buffer) PosFromOffset(off int) Pos {
	off = clampInt(off, 0, len(b.clusters))
	row, col := 0, 0
	for i := 0; i < off; i++ {
		if IsParagraphSeparator(b.clusters[i]) {
			row++
			col = 0
			continue
		}
		col++
	}
	return Pos{Row: row, GraphemeCol: col}
}

// OffsetFromPos converts a row/column position into a cluster offset.
// Rows past the end map to the document end; columns are clamped to the row.
func (b *Buffer) OffsetFromPos(p Pos) int {
	if p.Row < 0 {
		return 0
	}
	row, start := 0, 0
	for i, c := range b.clusters {
		if row == p.Row {
			break
		}
		if IsParagraphSeparator(c) {
			row++
			start = i + 1
		}
	}
	if row < p.Row {
		return len(b.clusters)
	}
	return start + clampInt(p.GraphemeCol, 0, b.rowLen(start))
}

// rowLen returns the number of non-separator clusters from start.
func (b *Buffer) rowLen(start int) int {
	n := 0
	for i := start; i < len(b.clusters) && !IsParagraphSeparator(b.clusters[i]); i++ {
		n++
	}
	return n
}

// rowStart returns the offset of the first cluster of the row containing off.
func (b *Buffer) rowStart(off int) int {
	for off > 0 && !IsParagraphSeparator(b.clusters[off-1]) {
		off--
	}
	return off
}
