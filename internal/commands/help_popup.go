package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/autolist/buffer"
)

var helpPopupStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// withHelp draws the help popup centered over base.
func (m editModel) withHelp(base string) string {
	lines := []string{
		`Type "12. " at the start of a paragraph to begin a list.`,
		"",
		"ctrl+s  save",
		"esc     clear selection",
		"f1      close help",
		"ctrl+q  quit",
		"",
		"list at cursor: " + listAtCursor(m.editor.Buffer()),
	}
	return overlay.Composite(
		helpPopupStyle.Render(strings.Join(lines, "\n")),
		base,
		overlay.Center,
		overlay.Center,
		0,
		0,
	)
}

// listAtCursor describes the list item of the paragraph holding the cursor.
func listAtCursor(buf *buffer.Buffer) string {
	cur := buf.Cursor()
	var para buffer.Paragraph
	for _, p := range buf.Paragraphs() {
		if p.Range.Location > cur {
			break
		}
		para = p
	}

	l, ok := para.Style.TextList()
	if !ok {
		return "none"
	}
	return fmt.Sprintf("list starting at %s", l.Marker(l.StartingItemNumber))
}
