package buffer

import "fmt"

// MarkerFormat selects how a list item's number is drawn.
type MarkerFormat uint8

const (
	MarkerDecimal MarkerFormat = iota
)

// TextList marks a paragraph as an ordered-list item.
type TextList struct {
	Format             MarkerFormat
	StartingItemNumber int
}

// Marker returns the rendered marker for item n, e.g. "7." for decimal lists.
func (l TextList) Marker(n int) string {
	switch l.Format {
	case MarkerDecimal:
		return fmt.Sprintf("%d.", n)
	default:
		return ""
	}
}

// TabStop is a tab position measured in points from the paragraph's
// leading edge.
type TabStop struct {
	Location float64
}

// ParagraphStyle is the paragraph-level attribute attached to clusters.
//
// A style is treated as immutable once attached to a buffer. Use Clone to
// derive a modified copy.
type ParagraphStyle struct {
	TextLists []TextList
	TabStops  []TabStop
}

// Clone returns a deep copy of s. Clone of nil is an empty style.
func (s *ParagraphStyle) Clone() *ParagraphStyle {
	if s == nil {
		return &ParagraphStyle{}
	}
	return &ParagraphStyle{
		TextLists: append([]TextList(nil), s.TextLists...),
		TabStops:  append([]TabStop(nil), s.TabStops...),
	}
}

func (s *ParagraphStyle) HasTextList() bool {
	return s != nil && len(s.TextLists) > 0
}

// TextList returns the innermost list of s.
func (s *ParagraphStyle) TextList() (TextList, bool) {
	if !s.HasTextList() {
		return TextList{}, false
	}
	return s.TextLists[len(s.TextLists)-1], true
}

func (s *ParagraphStyle) FirstTabStop() (TabStop, bool) {
	if s == nil || len(s.TabStops) == 0 {
		return TabStop{}, false
	}
	return s.TabStops[0], true
}

// Equal reports whether s and o describe the same style. nil equals only nil.
func (s *ParagraphStyle) Equal(o *ParagraphStyle) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.TextLists) != len(o.TextLists) || len(s.TabStops) != len(o.TabStops) {
		return false
	}
	for i := range s.TextLists {
		if s.TextLists[i] != o.TextLists[i] {
			return false
		}
	}
	for i := range s.TabStops {
		if s.TabStops[i] != o.TabStops[i] {
			return false
		}
	}
	return true
}

// TabStopsAt returns tab stops every interval points, count times.
func TabStopsAt(interval float64, count int) []TabStop {
	out := make([]TabStop, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, TabStop{Location: interval * float64(i)})
	}
	return out
}

// StyleRun is a maximal span of clusters sharing one paragraph style.
// Style is nil when the span carries no paragraph style.
type StyleRun struct {
	Range Range
	Style *ParagraphStyle
}
