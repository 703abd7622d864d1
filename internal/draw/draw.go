// Package draw renders the playfield to an ANSI terminal.
package draw

import (
	"github.com/tomz197/invaders/internal/loop/config"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClampTermSize clamps terminal dimensions to the max render resolution and
// computes the centering offset for the render area.
func ClampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
