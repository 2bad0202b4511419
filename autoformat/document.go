package autoformat

import "github.com/iw2rmb/autolist/buffer"

// Document is the text the engine formats. *buffer.Buffer implements it.
type Document interface {
	// ParagraphRange returns the smallest range of whole paragraphs
	// containing r, including the trailing separator.
	ParagraphRange(r buffer.Range) buffer.Range
	Len() int
	TextIn(r buffer.Range) string
	StyleRuns(r buffer.Range) []buffer.StyleRun

	// ReplaceText must notify edit observers before returning.
	ReplaceText(r buffer.Range, text string)
	// SetParagraphStyle must not notify edit observers.
	SetParagraphStyle(r buffer.Range, s *buffer.ParagraphStyle)
	SetTypingStyle(s *buffer.ParagraphStyle)
}

// EditSource delivers edit notifications. *buffer.Buffer implements it.
type EditSource interface {
	OnEdit(fn func(buffer.EditEvent)) (cancel func())
}

// Locate returns the paragraph range containing r, after clamping r into
// the document.
func Locate(doc Document, r buffer.Range) buffer.Range {
	return doc.ParagraphRange(buffer.ClampRange(r, doc.Len()))
}
