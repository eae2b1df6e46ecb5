package main

import (
	"fmt"
	"io"
	"iter"

	"github.com/jedib0t/go-pretty/v6/table"
)

// newTable writes title as a heading line and returns a table mirrored to
// w. go-pretty wraps titles to the column width, so the title is kept out
// of the table itself.
func newTable(w io.Writer, title string, header table.Row) table.Writer {
	fmt.Fprintln(w, title)
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(header)
	return tw
}

func renderPairs[V any](w io.Writer, title string, pairs iter.Seq2[string, V]) {
	tw := newTable(w, title, table.Row{"key", "value"})
	n := 0
	for k, v := range pairs {
		tw.AppendRow(table.Row{k, fmt.Sprint(v)})
		n++
	}
	tw.AppendFooter(table.Row{"count", n})
	tw.Render()
}

func renderRows(w io.Writer, title string, header [2]string, rows [][2]string) {
	tw := newTable(w, title, table.Row{header[0], header[1]})
	for _, r := range rows {
		tw.AppendRow(table.Row{r[0], r[1]})
	}
	tw.Render()
}
