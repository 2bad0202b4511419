package buffer

// IsParagraphSeparator reports whether cluster ends a paragraph.
// "\r\n" is a single cluster.
func IsParagraphSeparator(cluster string) bool {
	switch cluster {
	case "\n", "\r", "\r\n", "\u0085", "\u2029":
		return true
	default:
		return false
	}
}

// ParagraphRange returns the smallest range of whole paragraphs containing
// r. It starts after the preceding separator (or at 0) and ends after the
// last paragraph's own separator (or at the document end).
func (b *Buffer) ParagraphRange(r Range) Range {
	r = b.clampRange(r)

	start := r.Location
	for start > 0 && !IsParagraphSeparator(b.clusters[start-1]) {
		start--
	}

	end := r.End()
	if r.Length > 0 && IsParagraphSeparator(b.clusters[end-1]) {
		return Range{Location: start, Length: end - start}
	}
	for end < len(b.clusters) {
		end++
		if IsParagraphSeparator(b.clusters[end-1]) {
			break
		}
	}
	return Range{Location: start, Length: end - start}
}

// Paragraph is a read-only view of one paragraph.
type Paragraph struct {
	// Range includes the trailing separator, if any.
	Range Range
	// Text excludes the trailing separator.
	Text  string
	Style *ParagraphStyle
}

// Paragraphs splits the document into paragraphs. A document always has at
// least one paragraph, and a trailing separator starts an empty last one.
func (b *Buffer) Paragraphs() []Paragraph {
	var out []Paragraph
	start := 0
	for i, c := range b.clusters {
		if !IsParagraphSeparator(c) {
			continue
		}
		out = append(out, b.paragraphAt(start, i, i+1))
		start = i + 1
	}
	return append(out, b.paragraphAt(start, len(b.clusters), len(b.clusters)))
}

func (b *Buffer) paragraphAt(start, textEnd, end int) Paragraph {
	p := Paragraph{
		Range: Range{Location: start, Length: end - start},
		Text:  b.TextIn(Range{Location: start, Length: textEnd - start}),
	}
	switch {
	case start < len(b.styles):
		p.Style = b.styles[start]
	case start > 0:
		// Empty last paragraph: the separator before it decides.
		p.Style = b.styles[start-1]
	}
	return p
}

// ParagraphStyleAt returns the style of the cluster at off.
func (b *Buffer) ParagraphStyleAt(off int) (*ParagraphStyle, bool) {
	if off < 0 || off >= len(b.styles) || b.styles[off] == nil {
		return nil, false
	}
	return b.styles[off], true
}

// StyleRuns returns the maximal runs of equal styles covering r, in order.
// Runs are cut at r's bounds. A run reports the style of its first cluster.
func (b *Buffer) StyleRuns(r Range) []StyleRun {
	r = b.clampRange(r)
	var runs []StyleRun
	for i := r.Location; i < r.End(); i++ {
		s := b.styles[i]
		if n := len(runs); n > 0 && runs[n-1].Style.Equal(s) {
			runs[n-1].Range.Length++
			continue
		}
		runs = append(runs, StyleRun{Range: Range{Location: i, Length: 1}, Style: s})
	}
	return runs
}

// SetParagraphStyle attaches s to every cluster in r. A nil s removes the
// attribute. Observers are not notified: style changes are not text edits.
func (b *Buffer) SetParagraphStyle(r Range, s *ParagraphStyle) {
	r = b.clampRange(r)
	if r.IsEmpty() {
		return
	}
	for i := r.Location; i < r.End(); i++ {
		b.styles[i] = s
	}
	b.version++
}
