package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"dcofeed/internal/feed"
)

type prettyStyle int

const (
	styleText prettyStyle = iota
	styleCSV
	styleMarkdown
	styleHTML
)

// Pretty renders tables with go-pretty. CSV holds a single table (selected
// by Table) and is written with encoding/csv so cells stay RFC 4180 quoted;
// the other styles render every table in document order.
type Pretty struct {
	style prettyStyle
	table feed.TableKey
}

func newPretty(style prettyStyle, table feed.TableKey) Pretty {
	if table == "" {
		table = feed.KeyFeed
	}
	return Pretty{style: style, table: table}
}

func (p Pretty) Format() string {
	switch p.style {
	case styleCSV:
		return "csv"
	case styleMarkdown:
		return "markdown"
	case styleHTML:
		return "html"
	default:
		return "text"
	}
}

func (p Pretty) Extension() string {
	switch p.style {
	case styleCSV:
		return ".csv"
	case styleMarkdown:
		return ".md"
	case styleHTML:
		return ".html"
	default:
		return ".txt"
	}
}

func (p Pretty) WriteFile(ctx context.Context, path string, f *feed.Feed) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return renderFile(path, p, f)
}

func (p Pretty) Render(w io.Writer, f *feed.Feed) error {
	var b strings.Builder
	switch p.style {
	case styleCSV:
		t, err := feed.TableByKey(f, p.table)
		if err != nil {
			return err
		}
		if err := writeCSV(&b, t); err != nil {
			return err
		}
	case styleMarkdown:
		for i, t := range feed.Tables(f) {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "## %s\n\n", t.Name)
			b.WriteString(newTableWriter(t).RenderMarkdown())
			b.WriteByte('\n')
		}
	case styleHTML:
		b.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>DCO feed</title></head>\n<body>\n")
		for _, t := range feed.Tables(f) {
			fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(t.Name))
			b.WriteString(newTableWriter(t).RenderHTML())
			b.WriteByte('\n')
		}
		b.WriteString("</body>\n</html>\n")
	default:
		for i, t := range feed.Tables(f) {
			if i > 0 {
				b.WriteByte('\n')
			}
			tw := newTableWriter(t)
			tw.SetTitle(t.Name)
			b.WriteString(tw.Render())
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderTable renders a single table in the sink's style.
func (p Pretty) RenderTable(w io.Writer, t feed.Table) error {
	if p.style == styleCSV {
		return writeCSV(w, t)
	}
	tw := newTableWriter(t)
	var out string
	switch p.style {
	case styleMarkdown:
		out = tw.RenderMarkdown()
	case styleHTML:
		out = tw.RenderHTML()
	default:
		tw.SetTitle(t.Name)
		out = tw.Render()
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}

// RenderText writes t as a rounded plain-text table.
func RenderText(w io.Writer, t feed.Table) error {
	return newPretty(styleText, t.Key).RenderTable(w, t)
}

func writeCSV(w io.Writer, t feed.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(append([][]string{t.Headers()}, t.StringRows()...)); err != nil {
		return fmt.Errorf("write csv %s: %w", t.Name, err)
	}
	return nil
}

func newTableWriter(t feed.Table) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	columns := len(t.Columns)
	header := make(table.Row, columns)
	for i, col := range t.Columns {
		header[i] = col.Header
	}
	tw.AppendHeader(header)

	numeric := make([]bool, columns)
	if len(t.Rows) > 0 {
		for i := 0; i < columns && i < len(t.Rows[0]); i++ {
			_, numeric[i] = t.Rows[0][i].(int)
		}
	}

	for _, row := range t.Rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = feed.CellString(row[i])
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if numeric[i] {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)
	return tw
}
