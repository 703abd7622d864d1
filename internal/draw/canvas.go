package draw

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tomz197/invaders/internal/physics"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// It scales from logical playfield coordinates to terminal cells and only
// re-emits cells that changed since the previous Render.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]
	shown          []rune // Cell glyphs as last rendered; 0 means unknown

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets of the render area, for centering.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
}

// NewScaledCanvas creates a canvas that maps a logicalWidth x logicalHeight
// playfield onto termWidth x termHeight cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// A change of size forces a full redraw.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	if c.pixels == nil || termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.shown = make([]rune, termHeight*termWidth)
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render emit every cell, e.g. after the screen was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.shown)
}

// setPixel sets a pixel at actual sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// FillRect fills a box given in logical coordinates. Every box covers at
// least one sub-pixel so thin objects stay visible on small terminals.
func (c *Canvas) FillRect(b physics.Box) {
	x0 := int(math.Floor(b.Left * c.scaleX))
	x1 := int(math.Ceil(b.Right*c.scaleX)) - 1
	y0 := int(math.Floor(b.Top * c.scaleY))
	y1 := int(math.Ceil(b.Bottom*c.scaleY)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.setPixel(x, y)
		}
	}
}

// cell returns the glyph for a terminal cell.
func (c *Canvas) cell(row, col int) rune {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// Roughly one MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Render writes the cells that changed since the last Render.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			idx := row*c.termWidth + col
			ch := c.cell(row, col)
			if c.shown[idx] == ch {
				continue
			}
			c.shown[idx] = ch
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	return writeChunked(w, c.renderBuf.String())
}

// writeChunked writes data in pieces of at most maxChunkSize bytes.
func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right bars
	hasV := c.offsetRow >= 1 // Room for top/bottom bars
	if !hasH && !hasV {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}
	return writeChunked(w, buf.String())
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}
