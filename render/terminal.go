package render

import (
	"bufio"
	"io"

	"syncscope/core"
)

const (
	LitGlyph   = '#'
	UnlitGlyph = ' '
)

// Terminal renders lines as text, one character per column.
// Row 0 of every frame is preceded by an empty line.
type Terminal struct {
	w   *bufio.Writer
	eol string
	row [core.VisWidth]byte
}

// NewTerminal writes newline-terminated rows to w
func NewTerminal(w io.Writer) *Terminal {
	return NewTerminalEOL(w, "\n")
}

// NewTerminalEOL writes rows terminated by eol, e.g. "\r\n" for a serial console
func NewTerminalEOL(w io.Writer, eol string) *Terminal {
	return &Terminal{
		w:   bufio.NewWriterSize(w, core.VisWidth+2*len(eol)),
		eol: eol,
	}
}

// WriteLine implements Sink
func (t *Terminal) WriteLine(msg core.FrameMessage) error {
	if msg.Line == 0 {
		if _, err := t.w.WriteString(t.eol); err != nil {
			return err
		}
	}
	for col := range t.row {
		if msg.Pixels.Lit(col) {
			t.row[col] = LitGlyph
		} else {
			t.row[col] = UnlitGlyph
		}
	}
	if _, err := t.w.Write(t.row[:]); err != nil {
		return err
	}
	if _, err := t.w.WriteString(t.eol); err != nil {
		return err
	}
	return t.w.Flush()
}
