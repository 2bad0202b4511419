package editor

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/autolist/autoformat"
	"github.com/iw2rmb/autolist/buffer"
)

func defaultLayout() Layout {
	return Layout{DefaultTabStops: autoformat.DefaultTabStops(), PointsPerCell: 7}
}

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := New(Config{
		Text:         sb.String(),
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(10, 120)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 120 {
		t.Fatalf("expected 120 lines, got %d", len(lines))
	}

	digits := 3
	for i, line := range lines {
		wantPrefix := fmt.Sprintf("%*d ", digits, i+1)
		if !strings.HasPrefix(line, wantPrefix) {
			t.Fatalf("line %d prefix: got %q, want prefix %q", i+1, line, wantPrefix)
		}
	}
}

func TestRender_CursorProducesANSIWhenFocused(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)},
	})

	got := m.renderContent()
	want := " a b"
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorAtLineEndIsVisible(t *testing.T) {
	m := New(Config{Text: "ab"})
	m.buf.SetCursor(2)
	m.rebuildContent()

	if got, want := m.renderContent(), "ab\u00a0"; got != want {
		t.Fatalf("cursor at end: got %q, want %q", got, want)
	}
}

func TestRender_BlurredHidesCursor(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = m.Blur()
	if got, want := m.renderContent(), "ab"; got != want {
		t.Fatalf("blurred render: got %q, want %q", got, want)
	}
}

func TestRender_ListMarkerStyled(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{Text: r.NewStyle(), ListMarker: r.NewStyle().Bold(true)}
	m := New(Config{Style: st})
	m = typeKeys(m, "1. x")
	m = m.Blur()

	got := m.renderContent()
	want := st.Text.Render("    ") +
		st.ListMarker.Inherit(st.Text).Render("1") +
		st.Text.Render("   ") +
		st.Text.Render("x")
	if got != want {
		t.Fatalf("unexpected list render:\n got: %q\nwant: %q", got, want)
	}
	if got == stripANSI(got) {
		t.Fatalf("expected styled numeral, got plain %q", got)
	}
}

func TestRender_SelectionStyled(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	st := Style{Text: r.NewStyle(), Selection: r.NewStyle().Reverse(true)}
	m := New(Config{Text: "abc", Style: st})
	m.buf.SetSelection(buffer.Range{Location: 0, Length: 2})
	m = m.Blur()

	got := m.renderContent()
	want := st.Selection.Render("a") + st.Selection.Render("b") + st.Text.Render("c")
	if got != want {
		t.Fatalf("unexpected selection render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderPlain_ConvertedItems(t *testing.T) {
	b, _ := autoformat.Replay("1. First\n2. Second", autoformat.Config{})

	got := RenderPlain(b, defaultLayout())
	want := "    1   First\n    2   Second"
	if got != want {
		t.Fatalf("plain render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderPlain_FollowsCorrectedTabStops(t *testing.T) {
	b := buffer.New("\t1\tX", buffer.Options{})
	s := autoformat.ListStyle(1)
	s.TabStops = []buffer.TabStop{{Location: 18}}
	b.SetParagraphStyle(buffer.Range{Location: 0, Length: b.Len()}, s)

	if got, want := RenderPlain(b, defaultLayout()), "   1 X"; got != want {
		t.Fatalf("before correction: got %q, want %q", got, want)
	}

	e := autoformat.New(b, autoformat.Config{})
	e.Correct(buffer.Range{Location: 0, Length: b.Len()})

	if got, want := RenderPlain(b, defaultLayout()), "    1   X"; got != want {
		t.Fatalf("after correction: got %q, want %q", got, want)
	}
}

func TestRenderPlain_TrailingEmptyParagraph(t *testing.T) {
	b := buffer.New("a\n", buffer.Options{})
	if got, want := RenderPlain(b, defaultLayout()), "a\n"; got != want {
		t.Fatalf("plain render: got %q, want %q", got, want)
	}
}
