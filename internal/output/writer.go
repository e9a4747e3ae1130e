// Package output handles output formatting and writing.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/mensa/pkg/menu"
)

// Format represents output format types.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats for help texts.
func Formats() []string {
	return []string{string(FormatText), string(FormatTable), string(FormatJSON), string(FormatJSONL), string(FormatYAML)}
}

// Writer handles output serialization.
type Writer interface {
	// Write outputs a single day.
	Write(day menu.DayMenu) error

	// WriteAll outputs multiple days.
	WriteAll(days []menu.DayMenu) error

	// Flush ensures all data is written.
	Flush() error

	// Close releases resources.
	Close() error
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	pretty   bool
	indent   string
	language menu.Language
}

// WithPretty enables pretty-printing of JSON output.
func WithPretty(enabled bool) WriterOption {
	return func(c *writerConfig) {
		c.pretty = enabled
	}
}

// WithLanguage selects the dish names used by the text and table formats.
func WithLanguage(lang menu.Language) WriterOption {
	return func(c *writerConfig) {
		c.language = lang
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := &writerConfig{
		pretty:   true,
		indent:   "  ",
		language: menu.German,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	switch Format(strings.ToLower(string(format))) {
	case FormatText, "":
		return NewTextWriter(w, cfg.language), nil
	case FormatTable:
		return NewTableWriter(w, cfg.language), nil
	case FormatJSON:
		return NewJSONWriter(w, cfg.pretty, cfg.indent), nil
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use %s)", format, strings.Join(Formats(), ", "))
	}
}
