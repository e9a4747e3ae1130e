package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/mensa/pkg/menu"
)

// YAMLWriter buffers days and writes them as one YAML document on Flush.
type YAMLWriter struct {
	w       *bufio.Writer
	days    []menu.DayMenu
	written bool
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{
		w:    bufio.NewWriter(w),
		days: make([]menu.DayMenu, 0),
	}
}

// Write buffers a single day.
func (w *YAMLWriter) Write(day menu.DayMenu) error {
	w.days = append(w.days, day)
	return nil
}

// WriteAll buffers multiple days.
func (w *YAMLWriter) WriteAll(days []menu.DayMenu) error {
	w.days = append(w.days, days...)
	return nil
}

// Flush writes the buffered days as YAML, a single day as a mapping.
func (w *YAMLWriter) Flush() error {
	if len(w.days) == 0 && w.written {
		return w.w.Flush()
	}

	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)

	var v any = w.days
	if len(w.days) == 1 {
		v = w.days[0]
	}
	if err := encoder.Encode(v); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	w.days = w.days[:0]
	w.written = true
	return w.w.Flush()
}

// Close flushes the writer.
func (w *YAMLWriter) Close() error {
	return w.Flush()
}
