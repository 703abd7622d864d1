package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// ANSI control sequences.
const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// ChunkWriter accumulates overlay text and writes it in MTU-sized chunks on
// Flush. Cursor positions are relative to the render area.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends a cursor position sequence for 1-based canvas coordinates.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer so a Canvas can render into the same batch.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes s at 1-based canvas coordinates.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	if col < 1 {
		col = 1
	}
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// WriteCentered writes s centred on row of a canvas width columns wide.
func (cw *ChunkWriter) WriteCentered(width, row int, s string) {
	cw.WriteAt((width-utf8.RuneCountInString(s))/2+1, row, s)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer and resets it.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	if err := writeChunked(cw.bufw, data); err != nil {
		return err
	}
	return cw.bufw.Flush()
}

// TermSizeFunc returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	_, _ = io.WriteString(w, seqClear)
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	_, _ = io.WriteString(w, seqHideCursor)
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	_, _ = io.WriteString(w, seqShowCursor)
}
