package autoformat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/autolist/buffer"
)

func newAttached(t *testing.T, text string, cfg Config) (*buffer.Buffer, *Engine) {
	t.Helper()
	b := buffer.New(text, buffer.Options{})
	e := New(b, cfg)
	t.Cleanup(e.Attach(b))
	return b, e
}

func typeText(b *buffer.Buffer, s string) {
	for _, r := range s {
		if r == '\n' {
			b.InsertNewline()
			continue
		}
		b.InsertRune(r)
	}
}

func startNumberAt(t *testing.T, b *buffer.Buffer, off int) int {
	t.Helper()
	s, ok := b.ParagraphStyleAt(off)
	require.True(t, ok, "no style at %d", off)
	l, ok := s.TextList()
	require.True(t, ok, "no text list at %d", off)
	return l.StartingItemNumber
}

func TestEngine_ConvertsWhenSpaceIsTyped(t *testing.T) {
	b, e := newAttached(t, "", Config{})

	typeText(b, "12.")
	assert.Equal(t, "12.", b.Text())
	assert.Zero(t, e.Stats().Converted)

	typeText(b, " ")
	assert.Equal(t, "\t12\t", b.Text())
	assert.Equal(t, 12, startNumberAt(t, b, 0))
	assert.Equal(t, b.Len(), b.Cursor(), "cursor should stay at the end")

	typeText(b, "hello")
	assert.Equal(t, "\t12\thello", b.Text())
	assert.Equal(t, 12, startNumberAt(t, b, b.Len()-1), "typed text should inherit the list style")
	assert.Equal(t, 1, e.Stats().Converted)
}

func TestEngine_EndToEndTwoItems(t *testing.T) {
	b, e := newAttached(t, "", Config{})

	typeText(b, "1. First\n2. Second")

	assert.Equal(t, "\t1\tFirst\n\t2\tSecond", b.Text())
	ps := b.Paragraphs()
	require.Len(t, ps, 2)
	assert.Equal(t, 1, startNumberAt(t, b, ps[0].Range.Location))
	assert.Equal(t, 2, startNumberAt(t, b, ps[1].Range.Location))
	assert.Equal(t, 2, e.Stats().Converted)
}

func TestEngine_NoRenumbering(t *testing.T) {
	b, _ := newAttached(t, "", Config{})

	typeText(b, "5. five\n1. one")

	ps := b.Paragraphs()
	require.Len(t, ps, 2)
	assert.Equal(t, 5, startNumberAt(t, b, ps[0].Range.Location))
	assert.Equal(t, 1, startNumberAt(t, b, ps[1].Range.Location))
}

func TestEngine_ConvertsParagraphPastedWhole(t *testing.T) {
	b, _ := newAttached(t, "before\n", Config{})
	b.SetCursor(b.Len())

	b.InsertText("3. pasted")

	assert.Equal(t, "before\n\t3\tpasted", b.Text())
	_, ok := b.ParagraphStyleAt(0)
	assert.False(t, ok, "previous paragraph styled")
}

func TestEngine_EditInsideExistingParagraph(t *testing.T) {
	b, _ := newAttached(t, "9 lives\nother", Config{})
	b.SetCursor(1)

	b.InsertText(".")

	assert.Equal(t, "\t9\tlives\nother", b.Text())
	assert.Equal(t, 9, startNumberAt(t, b, 0))
	assert.Equal(t, 2, b.Cursor(), "cursor inside the rewritten paragraph keeps its offset")
}

func TestEngine_RecursionTerminates(t *testing.T) {
	b, e := newAttached(t, "", Config{})

	var events []buffer.EditEvent
	b.OnEdit(func(ev buffer.EditEvent) { events = append(events, ev) })

	typeText(b, "4. ")

	// Three keystrokes plus exactly one nested rewrite.
	require.Len(t, events, 4)
	assert.Equal(t, "\t4\t", events[2].InsertText, "engine rewrite is delivered before the keystroke returns")
	assert.Equal(t, " ", events[3].InsertText)
	assert.Equal(t, 1, e.Stats().Converted)
	assert.Zero(t, e.depth)
}

func TestEngine_ConvertedItemIsNotReprocessed(t *testing.T) {
	b, e := newAttached(t, "", Config{})
	typeText(b, "1. a")
	before := b.Text()

	typeText(b, " 2. b")

	assert.Equal(t, before+" 2. b", b.Text())
	assert.Equal(t, 1, e.Stats().Converted)
}

func TestEngine_CorrectsTabStopsOnEdit(t *testing.T) {
	b, e := newAttached(t, "\t1\titem\nplain", Config{DefaultTabStops: testDefaultStops})
	b.SetParagraphStyle(buffer.Range{Location: 0, Length: 8}, listWithStops(1, 18))
	b.SetCursor(7)

	b.InsertText("s")

	s, ok := b.ParagraphStyleAt(0)
	require.True(t, ok)
	assert.Equal(t, testDefaultStops, s.TabStops)
	assert.Equal(t, 1, startNumberAt(t, b, 0))
	_, ok = b.ParagraphStyleAt(b.Len() - 1)
	assert.False(t, ok, "plain paragraph styled")
	assert.Equal(t, 1, e.Stats().Corrected)
}

func TestEngine_DetachStopsFormatting(t *testing.T) {
	b := buffer.New("", buffer.Options{})
	e := New(b, Config{})
	detach := e.Attach(b)
	detach()

	typeText(b, "1. x")

	assert.Equal(t, "1. x", b.Text())
}

func TestEngine_HandleEditClampsStaleRange(t *testing.T) {
	b := buffer.New("1. x", buffer.Options{})
	e := New(b, Config{})

	e.HandleEdit(buffer.EditEvent{Range: buffer.Range{Location: 40, Length: 3}})

	assert.Equal(t, "\t1\tx", b.Text())
}

func TestEngine_LogsPipelineAtDebug(t *testing.T) {
	var out bytes.Buffer
	logger := zerolog.New(&out).Level(zerolog.DebugLevel)
	b, _ := newAttached(t, "", Config{Logger: &logger, DefaultTabStops: testDefaultStops})

	typeText(b, "1. ")

	logs := out.String()
	assert.Contains(t, logs, `"message":"edited paragraph"`)
	assert.Contains(t, logs, `"message":"converting paragraph to list item"`)
	assert.Contains(t, logs, `"component":"autoformat"`)
	assert.Equal(t, 4, strings.Count(logs, "edited paragraph"))
}

func TestReplay(t *testing.T) {
	b, stats := Replay("intro\r\n1. a\n2) b\n3. c", Config{})

	assert.Equal(t, "intro\n\t1\ta\n2) b\n\t3\tc", b.Text())
	assert.Equal(t, 2, stats.Converted)

	before := b.Text()
	b.InsertText(" 4. d")
	assert.Equal(t, before+" 4. d", b.Text(), "replay must detach its engine")
}
