package feed

import (
	"fmt"
	"strconv"
)

// Table names as they appear in rendered documents.
const (
	TableFeed       = "Feed_Principal"
	TableTexts      = "Textos"
	TableCharacters = "Personagens"
	TableFormats    = "Formatos"
)

// TableKey is the short selector accepted on the command line.
type TableKey string

const (
	KeyFeed       TableKey = "feed"
	KeyTexts      TableKey = "texts"
	KeyCharacters TableKey = "characters"
	KeyFormats    TableKey = "formats"
)

// TableKeys lists the selectors in document order.
var TableKeys = []TableKey{KeyFeed, KeyTexts, KeyCharacters, KeyFormats}

// Column is a header plus a suggested display width in characters.
type Column struct {
	Header string
	Width  float64
}

// Cell holds a string, int, or bool.
type Cell = any

// Table is a flat, sink-agnostic rendering of one feed table.
type Table struct {
	Key     TableKey
	Name    string
	Columns []Column
	Rows    [][]Cell
}

// Headers returns the column headers in order.
func (t Table) Headers() []string {
	out := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = col.Header
	}
	return out
}

// StringRows renders every cell with CellString.
func (t Table) StringRows() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = CellString(cell)
		}
		out[i] = cells
	}
	return out
}

// CellString renders booleans as TRUE/FALSE, the spelling DCO feeds expect.
func CellString(cell Cell) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(v)
	}
}

// Tables lays the feed out as the primary table followed by the texts,
// characters, and formats reference tables.
func Tables(f *Feed) []Table {
	return []Table{
		FeedTable(f),
		TextsTable(f.Reference),
		CharactersTable(f.Reference),
		FormatsTable(f.Reference),
	}
}

// TableByKey returns the single table selected by key.
func TableByKey(f *Feed, key TableKey) (Table, error) {
	switch key {
	case KeyFeed, "":
		return FeedTable(f), nil
	case KeyTexts:
		return TextsTable(f.Reference), nil
	case KeyCharacters:
		return CharactersTable(f.Reference), nil
	case KeyFormats:
		return FormatsTable(f.Reference), nil
	default:
		return Table{}, fmt.Errorf("unknown table %q (want feed, texts, characters, or formats)", key)
	}
}

// FeedTable lays out one row per combination.
func FeedTable(f *Feed) Table {
	t := Table{
		Key:  KeyFeed,
		Name: TableFeed,
		Columns: []Column{
			{"ID", 6},
			{"Reporting_Label", 35},
			{"Formato", 10},
			{"Width", 8},
			{"Height", 8},
			{"Personagem_ID", 12},
			{"Personagem_Asset", 25},
			{"Headline", 25},
			{"Subtext_Frame1", 55},
			{"Subtext_Frame2", 70},
			{"ExitURL", 120},
			{"Default", 8},
			{"Active", 8},
		},
		Rows: make([][]Cell, 0, f.Len()),
	}
	for _, row := range f.Rows {
		t.Rows = append(t.Rows, []Cell{
			row.SequenceID,
			row.ReportingLabel,
			row.Format.Name,
			row.Format.Width,
			row.Format.Height,
			row.Character.ID,
			row.AssetFilename,
			row.Headline,
			row.Frame1Text,
			row.SecondaryText,
			row.DestinationURL,
			row.IsDefault,
			row.IsActive,
		})
	}
	return t
}

// TextsTable lists the keyed copy lines.
func TextsTable(ref Reference) Table {
	t := Table{
		Key:     KeyTexts,
		Name:    TableTexts,
		Columns: []Column{{"Chave", 12}, {"Texto", 80}},
		Rows:    make([][]Cell, 0, len(ref.Texts)),
	}
	for _, entry := range ref.Texts {
		t.Rows = append(t.Rows, []Cell{entry.Key, entry.Value})
	}
	return t
}

// CharactersTable has one asset column per format.
func CharactersTable(ref Reference) Table {
	columns := []Column{{"ID", 22}, {"Nome", 22}}
	for _, name := range ref.AssetFormats {
		columns = append(columns, Column{Header: "Asset_" + name, Width: 22})
	}
	t := Table{
		Key:     KeyCharacters,
		Name:    TableCharacters,
		Columns: columns,
		Rows:    make([][]Cell, 0, len(ref.Characters)),
	}
	for _, entry := range ref.Characters {
		row := []Cell{entry.ID, entry.DisplayName}
		for _, asset := range entry.Assets {
			row = append(row, asset)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// FormatsTable projects the formats input.
func FormatsTable(ref Reference) Table {
	t := Table{
		Key:     KeyFormats,
		Name:    TableFormats,
		Columns: []Column{{"Formato", 18}, {"Width", 18}, {"Height", 18}, {"Tipo", 18}},
		Rows:    make([][]Cell, 0, len(ref.Formats)),
	}
	for _, format := range ref.Formats {
		t.Rows = append(t.Rows, []Cell{format.Name, format.Width, format.Height, format.Kind})
	}
	return t
}
