package autoformat

import (
	"github.com/iw2rmb/autolist/buffer"
	"github.com/iw2rmb/autolist/internal/grapheme"
)

// Replay types text one cluster at a time into an empty buffer with an
// engine attached, the way a user would, and returns the formatted buffer.
// Paragraph separators are typed as "\n". The engine is detached before
// Replay returns.
func Replay(text string, cfg Config) (*buffer.Buffer, Stats) {
	b := buffer.New("", buffer.Options{})
	e := New(b, cfg)
	detach := e.Attach(b)
	defer detach()

	for _, c := range grapheme.Split(text) {
		if buffer.IsParagraphSeparator(c) {
			b.InsertNewline()
			continue
		}
		b.InsertText(c)
	}
	return b, e.Stats()
}
