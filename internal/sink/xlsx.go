package sink

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"dcofeed/internal/feed"
)

const (
	headerFill  = "0C326F"
	headerFont  = "FFFFFF"
	borderColor = "000000"
)

// XLSX writes one worksheet per table, styled like the workbook the DCO
// platform was first fed with.
type XLSX struct{}

func (XLSX) Format() string    { return "xlsx" }
func (XLSX) Extension() string { return ".xlsx" }

func (x XLSX) WriteFile(ctx context.Context, path string, f *feed.Feed) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return renderFile(path, x, f)
}

func (XLSX) Render(w io.Writer, f *feed.Feed) error {
	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	styles, err := newWorkbookStyles(wb)
	if err != nil {
		return err
	}

	first := wb.GetSheetName(0)
	for i, t := range feed.Tables(f) {
		if i == 0 {
			if err := wb.SetSheetName(first, t.Name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := wb.NewSheet(t.Name); err != nil {
			return fmt.Errorf("add sheet %s: %w", t.Name, err)
		}
		if err := writeSheet(wb, t, styles); err != nil {
			return fmt.Errorf("sheet %s: %w", t.Name, err)
		}
	}
	wb.SetActiveSheet(0)

	if err := wb.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type workbookStyles struct {
	header int
	cell   int
}

func newWorkbookStyles(wb *excelize.File) (workbookStyles, error) {
	borders := []excelize.Border{
		{Type: "left", Color: borderColor, Style: 1},
		{Type: "right", Color: borderColor, Style: 1},
		{Type: "top", Color: borderColor, Style: 1},
		{Type: "bottom", Color: borderColor, Style: 1},
	}
	header, err := wb.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFont},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    borders,
	})
	if err != nil {
		return workbookStyles{}, fmt.Errorf("header style: %w", err)
	}
	cell, err := wb.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    borders,
	})
	if err != nil {
		return workbookStyles{}, fmt.Errorf("cell style: %w", err)
	}
	return workbookStyles{header: header, cell: cell}, nil
}

func writeSheet(wb *excelize.File, t feed.Table, styles workbookStyles) error {
	sheet := t.Name
	columns := len(t.Columns)
	if columns == 0 {
		return nil
	}

	headers := make([]any, columns)
	for i, col := range t.Columns {
		headers[i] = col.Header
	}
	if err := wb.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for r, row := range t.Rows {
		values := make([]any, columns)
		for c := 0; c < columns; c++ {
			if c >= len(row) {
				values[c] = ""
				continue
			}
			values[c] = xlsxValue(row[c])
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	for i, col := range t.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := wb.SetColWidth(sheet, name, name, col.Width); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return err
	}
	if err := wb.SetCellStyle(sheet, "A1", lastCol+"1", styles.header); err != nil {
		return err
	}
	if len(t.Rows) > 0 {
		if err := wb.SetCellStyle(sheet, "A2", fmt.Sprintf("%s%d", lastCol, len(t.Rows)+1), styles.cell); err != nil {
			return err
		}
	}

	return wb.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// xlsxValue keeps numbers numeric and spells booleans the way the feed
// importer expects them.
func xlsxValue(cell feed.Cell) any {
	switch v := cell.(type) {
	case int:
		return v
	case bool:
		return feed.CellString(v)
	case nil:
		return ""
	default:
		return feed.CellString(v)
	}
}
