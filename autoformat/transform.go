package autoformat

import (
	"strconv"

	"github.com/iw2rmb/autolist/buffer"
	"github.com/iw2rmb/autolist/internal/grapheme"
)

// Rewrite returns the list form of a detected paragraph and the list's
// starting number. The numeral, dot, and space are replaced by
// TAB numeral TAB; the rest of text, including any trailing separator, is
// kept. A numeral that does not parse as an int starts at 1.
func Rewrite(text, prefix string) (newText string, start int) {
	start, err := strconv.Atoi(prefix)
	if err != nil {
		start = 1
	}

	clusters := grapheme.Split(text)
	skip := min(grapheme.Count(prefix)+2, len(clusters))
	return "\t" + prefix + "\t" + grapheme.Join(clusters[skip:]), start
}

// ListStyle returns the paragraph style for an item of a decimal list
// starting at start.
func ListStyle(start int) *buffer.ParagraphStyle {
	return &buffer.ParagraphStyle{
		TextLists: []buffer.TextList{{Format: buffer.MarkerDecimal, StartingItemNumber: start}},
	}
}

// Transform rewrites the paragraph at para, whose current text is text,
// into list form and styles it as a list item. The replacement fires a
// nested edit notification before Transform returns.
func (e *Engine) Transform(text string, para buffer.Range, prefix string) {
	newText, start := Rewrite(text, prefix)
	if Classify(newText).IsList {
		// Handling the nested notification would rewrite again, forever.
		e.log.Error().Str("text", newText).Msg("rewritten paragraph still classifies as a list; skipping")
		return
	}

	e.log.Debug().
		Int("location", para.Location).
		Int("start", start).
		Msg("converting paragraph to list item")

	e.doc.ReplaceText(para, newText)

	style := ListStyle(start)
	e.doc.SetParagraphStyle(buffer.Range{Location: para.Location, Length: grapheme.Count(newText)}, style)
	e.doc.SetTypingStyle(style)
	e.converted++
}
