package editor

import (
	"github.com/rs/zerolog"

	"github.com/iw2rmb/autolist/buffer"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// TabStops is the default tab stop layout, used to render paragraphs
	// without their own tab stops and handed to the autoformat engine as the
	// layout misplaced list tab stops are reset to. Nil means
	// autoformat.DefaultTabStops().
	TabStops []buffer.TabStop

	// PointsPerCell converts tab stop locations into terminal cells.
	// Default: 7.
	PointsPerCell float64

	// KeyMap defaults to DefaultKeyMap() when left empty.
	KeyMap   KeyMap
	ReadOnly bool

	// Logger is forwarded to the autoformat engine.
	Logger *zerolog.Logger

	// OnChange is called after each update that changed the buffer version
	// or cursor.
	OnChange func(ChangeEvent)
}
