package autoformat

import (
	"github.com/rs/zerolog"

	"github.com/iw2rmb/autolist/buffer"
)

// Engine formats a Document in reaction to its edit notifications.
//
// An Engine is not safe for concurrent use; it runs on the goroutine that
// delivers the notifications.
type Engine struct {
	doc             Document
	defaultTabStops []buffer.TabStop
	log             zerolog.Logger

	depth     int
	converted int
	corrected int
}

// Stats counts the engine's rewrites since creation.
type Stats struct {
	Converted int // paragraphs turned into list items
	Corrected int // tab stop resets applied
}

// New returns an engine that formats doc once attached to its notifications.
func New(doc Document, cfg Config) *Engine {
	stops := cfg.DefaultTabStops
	if stops == nil {
		stops = DefaultTabStops()
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("component", "autoformat").Logger()
	}
	return &Engine{
		doc:             doc,
		defaultTabStops: append([]buffer.TabStop(nil), stops...),
		log:             log,
	}
}

// Attach subscribes the engine to src. The returned func unsubscribes.
func (e *Engine) Attach(src EditSource) (detach func()) {
	return src.OnEdit(e.HandleEdit)
}

// HandleEdit runs the formatting pipeline for one edit notification.
//
// It may be re-entered through the document's own notification while a
// conversion is in progress; the nested call sees already rewritten text.
func (e *Engine) HandleEdit(ev buffer.EditEvent) {
	e.depth++
	defer func() { e.depth-- }()

	para := Locate(e.doc, ev.Range)
	text := e.doc.TextIn(para)
	det := Classify(text)

	e.log.Debug().
		Int("depth", e.depth).
		Str("paragraph", text).
		Bool("ordered_list", det.IsList).
		Msg("edited paragraph")

	if det.IsList {
		e.Transform(text, para, det.NumeralPrefix)
	}

	// The rewrite keeps the paragraph's length, but locate again rather
	// than rely on it.
	e.Correct(Locate(e.doc, ev.Range))
}

// Stats returns the rewrite counters.
func (e *Engine) Stats() Stats {
	return Stats{Converted: e.converted, Corrected: e.corrected}
}
