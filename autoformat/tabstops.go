package autoformat

import "github.com/iw2rmb/autolist/buffer"

// Correct resets the tab stops of list paragraphs whose first tab stop lies
// left of the default layout's first stop.
//
// Each style run of para is checked on its own, but a fix is applied over
// the whole paragraph, so sibling runs get the same style whether or not
// they were off.
func (e *Engine) Correct(para buffer.Range) {
	if len(e.defaultTabStops) == 0 {
		return
	}
	limit := e.defaultTabStops[0].Location

	for _, run := range e.doc.StyleRuns(para) {
		style := run.Style
		if !style.HasTextList() {
			continue
		}
		first, ok := style.FirstTabStop()
		if !ok || first.Location >= limit {
			continue
		}

		e.log.Debug().
			Float64("first_tab_stop", first.Location).
			Float64("default_tab_stop", limit).
			Msg("resetting tab stops")

		fixed := style.Clone()
		fixed.TabStops = append([]buffer.TabStop(nil), e.defaultTabStops...)
		e.doc.SetParagraphStyle(para, fixed)
		e.corrected++
	}
}
