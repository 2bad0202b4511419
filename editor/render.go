package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/autolist/buffer"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	paras := m.buf.Paragraphs()
	cursor := m.buf.CursorPos()
	sel, selOK := m.buf.Selection()
	st := m.cfg.Style

	digits := len(fmt.Sprintf("%d", len(paras)))

	lines := make([]string, len(paras))
	for row, p := range paras {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			lnStyle := st.LineNum
			if row == cursor.Row {
				lnStyle = st.LineNumActive
			}
			sb.WriteString(lnStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(st.Gutter.Render(" "))
		}

		vl := buildVisualLine(p.Text, p.Style, m.layout.tabColumns(p.Style))
		cursorRow := m.focused && row == cursor.Row
		for i, tok := range vl.Tokens {
			off := p.Range.Location + tok.Col
			switch {
			case cursorRow && tok.Col == cursor.GraphemeCol:
				render := st.Cursor.Render
				if tok.Role == roleTab && i == len(vl.Tokens)-1 {
					// Trailing spaces can be elided by terminals at line end.
					render = nbspRender(st.Cursor)
				}
				sb.WriteString(render(tok.Text))
			case selOK && sel.Contains(off):
				sb.WriteString(st.Selection.Render(tok.Text))
			case tok.Role == roleMarker:
				sb.WriteString(st.ListMarker.Inherit(st.Text).Render(tok.Text))
			default:
				sb.WriteString(st.Text.Render(tok.Text))
			}
		}
		if cursorRow && cursor.GraphemeCol >= len(vl.Tokens) {
			sb.WriteString(nbspRender(st.Cursor)(" "))
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func nbspRender(s lipgloss.Style) func(...string) string {
	return func(parts ...string) string {
		replaced := make([]string, len(parts))
		for i, p := range parts {
			replaced[i] = strings.ReplaceAll(p, " ", "\u00a0")
		}
		return s.Render(replaced...)
	}
}

// RenderPlain renders b as plain text with TABs expanded to each paragraph's
// tab stops. Paragraphs are joined with "\n" and trailing spaces are kept.
func RenderPlain(b *buffer.Buffer, l Layout) string {
	paras := b.Paragraphs()
	lines := make([]string, len(paras))
	for i, p := range paras {
		vl := buildVisualLine(p.Text, p.Style, l.tabColumns(p.Style))
		var sb strings.Builder
		for _, tok := range vl.Tokens {
			sb.WriteString(tok.Text)
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
