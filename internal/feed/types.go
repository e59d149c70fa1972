package feed

// Character is a creative persona whose artwork varies per format.
type Character struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Format is an ad placement size.
type Format struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Kind   string `json:"kind"`
}

// TextConstants are copied verbatim onto every row.
type TextConstants struct {
	Headline   string `json:"headline"`
	Frame1Text string `json:"frame1_text"`
}

// Input bundles the ordered collections that drive enumeration.
type Input struct {
	Formats        []Format
	Characters     []Character
	SecondaryTexts []string
	Constants      TextConstants
	URLTemplate    string
}

// Row is one enumerated creative combination.
type Row struct {
	SequenceID     int       `json:"sequence_id"`
	ReportingLabel string    `json:"reporting_label"`
	Format         Format    `json:"format"`
	Character      Character `json:"character"`
	Headline       string    `json:"headline"`
	Frame1Text     string    `json:"frame1_text"`
	SecondaryText  string    `json:"secondary_text"`
	// SecondaryIndex is the 1-based position of SecondaryText in the input.
	SecondaryIndex int    `json:"secondary_index"`
	AssetFilename  string `json:"asset_filename"`
	DestinationURL string `json:"destination_url"`
	IsDefault      bool   `json:"is_default"`
	IsActive       bool   `json:"is_active"`
}

// TextEntry is a keyed copy line in the texts reference table.
type TextEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CharacterEntry lists a character with its asset filename for every format.
type CharacterEntry struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Assets      []string `json:"assets"`
}

// Reference holds the lookup tables derived from the input.
type Reference struct {
	Texts      []TextEntry      `json:"texts"`
	Characters []CharacterEntry `json:"characters"`
	// AssetFormats names the format behind each CharacterEntry.Assets column.
	AssetFormats []string `json:"asset_formats"`
	Formats      []Format `json:"formats"`
}

// Feed is the complete enumeration result.
type Feed struct {
	Rows      []Row     `json:"rows"`
	Reference Reference `json:"reference"`
}

// Len returns the number of enumerated rows.
func (f *Feed) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Rows)
}

// Defaults returns the rows flagged as default variants.
func (f *Feed) Defaults() []Row {
	if f == nil {
		return nil
	}
	var out []Row
	for _, row := range f.Rows {
		if row.IsDefault {
			out = append(out, row)
		}
	}
	return out
}

// Combinations returns the expected row count for the input.
func (in Input) Combinations() int {
	return len(in.Formats) * len(in.Characters) * len(in.SecondaryTexts)
}
