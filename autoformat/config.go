package autoformat

import (
	"github.com/rs/zerolog"

	"github.com/iw2rmb/autolist/buffer"
)

// DefaultTabStops mirrors a typical text system default: twelve stops,
// 28 points apart.
func DefaultTabStops() []buffer.TabStop {
	return buffer.TabStopsAt(28, 12)
}

// Config configures an Engine.
type Config struct {
	// DefaultTabStops is the layout misplaced list tab stops are reset to.
	// Nil means DefaultTabStops(); an empty non-nil slice disables
	// correction.
	DefaultTabStops []buffer.TabStop

	// Logger receives debug traces of each pipeline step. Nil discards.
	Logger *zerolog.Logger
}
