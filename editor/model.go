package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/autolist/autoformat"
	"github.com/iw2rmb/autolist/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer with
// ordered-list autoformatting attached.
type Model struct {
	cfg    Config
	buf    *buffer.Buffer
	format *autoformat.Engine
	layout Layout

	focused bool

	viewport viewport.Model

	lastBufVersion uint64
	lastCursor     int
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabStops == nil {
		cfg.TabStops = autoformat.DefaultTabStops()
	}
	if cfg.PointsPerCell <= 0 {
		cfg.PointsPerCell = defaultPointsPerCell
	}

	buf := buffer.New(cfg.Text, buffer.Options{})
	engine := autoformat.New(buf, autoformat.Config{
		DefaultTabStops: cfg.TabStops,
		Logger:          cfg.Logger,
	})
	// The engine lives as long as the buffer.
	engine.Attach(buf)

	m := Model{
		cfg:      cfg,
		buf:      buf,
		format:   engine,
		layout:   Layout{DefaultTabStops: cfg.TabStops, PointsPerCell: cfg.PointsPerCell},
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Stats reports what the attached engine has done so far.
func (m Model) Stats() autoformat.Stats { return m.format.Stats() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) View() string { return m.viewport.View() }

func (m *Model) syncFromBuffer() (changed, cursorChanged bool) {
	if m.buf == nil {
		return false, false
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false, false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	return true, cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	row := m.buf.CursorPos().Row
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
