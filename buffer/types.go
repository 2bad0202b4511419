package buffer

// Range is a half-open span of grapheme clusters: [Location, Location+Length).
type Range struct {
	Location int
	Length   int
}

// Pos points into the document by (row, col), where rows are paragraphs
// and GraphemeCol counts clusters from the paragraph start.
// Row and GraphemeCol are 0-based.
type Pos struct {
	Row         int
	GraphemeCol int
}

func (r Range) End() int { return r.Location + r.Length }

func (r Range) IsEmpty() bool { return r.Length == 0 }

// Contains reports whether off lies inside r.
func (r Range) Contains(off int) bool {
	return off >= r.Location && off < r.End()
}

// RangeBetween returns the range spanning offsets a and b in either order.
func RangeBetween(a, b int) Range {
	if b < a {
		a, b = b, a
	}
	return Range{Location: a, Length: b - a}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampRange clamps r into a document of n clusters.
//
// The returned Range always satisfies:
// - 0 <= Location <= n
// - 0 <= Length and Location+Length <= n
func ClampRange(r Range, n int) Range {
	if n < 0 {
		n = 0
	}
	if r.Length < 0 {
		r = Range{Location: r.Location + r.Length, Length: -r.Length}
	}
	start := clampInt(r.Location, 0, n)
	end := clampInt(r.Location+r.Length, start, n)
	return Range{Location: start, Length: end - start}
}
