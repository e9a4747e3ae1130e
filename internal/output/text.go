package output

import (
	"bufio"
	"io"

	"github.com/jmylchreest/mensa/pkg/menu"
)

// TextWriter prints days the way they are read out on the console:
// a header line per day followed by "<id>: <name>" lines.
type TextWriter struct {
	w    *bufio.Writer
	lang menu.Language
}

// NewTextWriter creates a text writer rendering names in lang.
func NewTextWriter(w io.Writer, lang menu.Language) *TextWriter {
	return &TextWriter{
		w:    bufio.NewWriter(w),
		lang: lang,
	}
}

// Write renders a single day.
func (w *TextWriter) Write(day menu.DayMenu) error {
	return w.WriteAll([]menu.DayMenu{day})
}

// WriteAll renders multiple days.
func (w *TextWriter) WriteAll(days []menu.DayMenu) error {
	for _, line := range menu.Render(days, w.lang) {
		if _, err := w.w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *TextWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *TextWriter) Close() error {
	return w.Flush()
}
