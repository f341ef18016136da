// Package console presents frames on an ANSI terminal. Every cell is drawn
// as one solid glyph whose foreground and background both take the cell
// color, so the grid reads as a block of colored pixels.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"console-cube/internal/raster"
)

// DefaultGlyph is the full block character.
const DefaultGlyph = '█'

// Sink writes frames to a terminal as escape sequences.
type Sink struct {
	w     *bufio.Writer
	glyph string

	started bool
	height  int
	styles  map[raster.Color]string
}

// NewSink returns a sink writing to w. A zero glyph selects DefaultGlyph.
func NewSink(w io.Writer, glyph rune) *Sink {
	if glyph == 0 {
		glyph = DefaultGlyph
	}
	return &Sink{
		w:      bufio.NewWriterSize(w, 64*1024),
		glyph:  string(glyph),
		styles: make(map[raster.Color]string),
	}
}

// Present draws fb at the top-left of the screen. The cursor is hidden and
// the screen erased before the first frame.
func (s *Sink) Present(fb *raster.FrameBuffer) error {
	if !s.started {
		s.w.WriteString(ansi.HideCursor)
		s.w.WriteString(ansi.EraseEntireScreen)
		s.started = true
	}
	s.height = fb.Height

	for y := 0; y < fb.Height; y++ {
		s.w.WriteString(ansi.CursorPosition(1, y+1))
		row := fb.Pix[y*fb.Width : (y+1)*fb.Width]
		for x := 0; x < len(row); {
			c := row[x]
			run := 1
			for x+run < len(row) && row[x+run] == c {
				run++
			}
			s.w.WriteString(s.style(c))
			s.w.WriteString(strings.Repeat(s.glyph, run))
			x += run
		}
	}
	s.w.WriteString(ansi.ResetStyle)

	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("console: write frame: %w", err)
	}
	return nil
}

// Close resets attributes, shows the cursor and parks it below the grid.
func (s *Sink) Close() error {
	s.w.WriteString(ansi.ResetStyle)
	if s.started {
		s.w.WriteString(ansi.CursorPosition(1, s.height+1))
	}
	s.w.WriteString(ansi.ShowCursor)
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("console: restore terminal: %w", err)
	}
	return nil
}

func (s *Sink) style(c raster.Color) string {
	if seq, ok := s.styles[c]; ok {
		return seq
	}
	fg, bg := Attribute(c)
	seq := ansi.Style{}.ForegroundColor(fg).BackgroundColor(bg).String()
	s.styles[c] = seq
	return seq
}

// Console attribute bits are ordered blue, green, red, intensity; ANSI
// orders them red, green, blue.
var attrToANSI = [8]ansi.BasicColor{
	ansi.Black,
	ansi.Blue,
	ansi.Green,
	ansi.Cyan,
	ansi.Red,
	ansi.Magenta,
	ansi.Yellow,
	ansi.White,
}

// Attribute splits a console color code into its ANSI foreground (low
// nibble) and background (high nibble).
func Attribute(c raster.Color) (fg, bg ansi.BasicColor) {
	return nibble(uint8(c) & 0x0f), nibble(uint8(c) >> 4)
}

func nibble(n uint8) ansi.BasicColor {
	bc := attrToANSI[n&0x07]
	if n&0x08 != 0 {
		bc += 8
	}
	return bc
}
