package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/jmylchreest/mensa/pkg/menu"
)

// JSONWriter buffers days and writes them as one JSON document on Flush.
// A single day is written as an object, anything else as an array.
type JSONWriter struct {
	w       *bufio.Writer
	pretty  bool
	indent  string
	days    []menu.DayMenu
	written bool
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool, indent string) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
		days:   make([]menu.DayMenu, 0),
	}
}

// Write buffers a single day.
func (w *JSONWriter) Write(day menu.DayMenu) error {
	w.days = append(w.days, day)
	return nil
}

// WriteAll buffers multiple days.
func (w *JSONWriter) WriteAll(days []menu.DayMenu) error {
	w.days = append(w.days, days...)
	return nil
}

// Flush writes the buffered days and empties the buffer. Flushing an
// empty buffer writes "[]" once.
func (w *JSONWriter) Flush() error {
	if len(w.days) == 0 && w.written {
		return w.w.Flush()
	}

	enc := newEncoder(w.w)
	if w.pretty {
		enc.SetIndent("", w.indent)
	}

	var v any = w.days
	if len(w.days) == 1 {
		v = w.days[0]
	}
	if err := enc.Encode(v); err != nil {
		return err
	}

	w.days = w.days[:0]
	w.written = true
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONWriter) Close() error {
	return w.Flush()
}

// JSONLWriter writes one JSON object per day and line.
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		w: bufio.NewWriter(w),
	}
}

// Write writes a single day as a JSON line.
func (w *JSONLWriter) Write(day menu.DayMenu) error {
	if err := newEncoder(w.w).Encode(day); err != nil {
		return err
	}
	return w.w.Flush()
}

// WriteAll writes multiple days as JSON lines.
func (w *JSONLWriter) WriteAll(days []menu.DayMenu) error {
	for _, day := range days {
		if err := w.Write(day); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONLWriter) Close() error {
	return w.Flush()
}

// newEncoder keeps "&" and "<" in dish names readable.
func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}
