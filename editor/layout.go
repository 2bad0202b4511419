package editor

import (
	"math"

	"github.com/iw2rmb/autolist/buffer"
	"github.com/iw2rmb/autolist/internal/grapheme"
)

// Layout converts paragraph tab stops, measured in points, into terminal
// columns.
type Layout struct {
	// DefaultTabStops applies to paragraphs without tab stops of their own.
	DefaultTabStops []buffer.TabStop
	// PointsPerCell is the width of one terminal cell in points.
	PointsPerCell float64
}

const defaultPointsPerCell = 7

func (l Layout) pointsPerCell() float64 {
	if l.PointsPerCell <= 0 {
		return defaultPointsPerCell
	}
	return l.PointsPerCell
}

// tabColumns returns the columns TABs in a paragraph with style s advance to.
// Stops that round onto the same or an earlier column are dropped.
func (l Layout) tabColumns(s *buffer.ParagraphStyle) []int {
	stops := l.DefaultTabStops
	if s != nil && len(s.TabStops) > 0 {
		stops = s.TabStops
	}
	ppc := l.pointsPerCell()
	cols := make([]int, 0, len(stops))
	for _, st := range stops {
		c := int(math.Round(st.Location / ppc))
		if c <= 0 {
			continue
		}
		if n := len(cols); n > 0 && c <= cols[n-1] {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}

type tokenRole uint8

const (
	roleText tokenRole = iota
	roleTab
	roleMarker
)

// visualToken is one rendered cluster. TABs are expanded to spaces.
type visualToken struct {
	Text      string
	Role      tokenRole
	StartCell int
	CellWidth int
	// Col is the cluster index within the paragraph.
	Col int
}

type visualLine struct {
	Tokens []visualToken
	Width  int
}

// buildVisualLine lays out one paragraph's text. A TAB advances to the next
// column in tabs, or one cell past the last one. In list paragraphs the
// numeral between the leading TAB and the next one is marked roleMarker.
func buildVisualLine(text string, s *buffer.ParagraphStyle, tabs []int) visualLine {
	clusters := grapheme.Split(text)
	markerEnd := -1
	if s.HasTextList() && len(clusters) > 0 && clusters[0] == "\t" {
		for i := 1; i < len(clusters); i++ {
			if clusters[i] == "\t" {
				markerEnd = i
				break
			}
		}
	}

	var vl visualLine
	vl.Tokens = make([]visualToken, 0, len(clusters))
	col := 0
	for i, c := range clusters {
		tok := visualToken{Text: c, StartCell: col, Col: i}
		switch {
		case c == "\t":
			next := col + 1
			for _, tc := range tabs {
				if tc > col {
					next = tc
					break
				}
			}
			tok.Role = roleTab
			tok.CellWidth = next - col
			tok.Text = spaces(tok.CellWidth)
		default:
			tok.CellWidth = grapheme.Width(c)
			if tok.CellWidth <= 0 {
				tok.CellWidth = 1
			}
			if i > 0 && i < markerEnd {
				tok.Role = roleMarker
			}
		}
		col += tok.CellWidth
		vl.Tokens = append(vl.Tokens, tok)
	}
	vl.Width = col
	return vl
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
