package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jmylchreest/mensa/pkg/menu"
)

var tableHeaders = map[menu.Language]table.Row{
	menu.German:  {"Tag", "Nr.", "Gericht"},
	menu.English: {"Day", "No.", "Dish"},
}

// TableWriter buffers days and renders them as one table on Flush,
// one row per dish.
type TableWriter struct {
	out  io.Writer
	lang menu.Language
	rows []table.Row
}

// NewTableWriter creates a table writer rendering names in lang.
func NewTableWriter(w io.Writer, lang menu.Language) *TableWriter {
	return &TableWriter{
		out:  w,
		lang: lang,
	}
}

// Write buffers a single day. A day without dishes still gets a row.
func (w *TableWriter) Write(day menu.DayMenu) error {
	if len(day.Dishes) == 0 {
		w.rows = append(w.rows, table.Row{day.Label, "", ""})
		return nil
	}
	for _, d := range day.Dishes {
		w.rows = append(w.rows, table.Row{day.Label, d.ID, d.Name(w.lang)})
	}
	return nil
}

// WriteAll buffers multiple days.
func (w *TableWriter) WriteAll(days []menu.DayMenu) error {
	for _, day := range days {
		if err := w.Write(day); err != nil {
			return err
		}
	}
	return nil
}

// Flush renders the buffered rows, if any.
func (w *TableWriter) Flush() error {
	if len(w.rows) == 0 {
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w.out)
	t.AppendHeader(tableHeaders[w.lang])
	t.AppendRows(w.rows)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	t.Render()

	w.rows = nil
	return nil
}

// Close flushes the writer.
func (w *TableWriter) Close() error {
	return w.Flush()
}
