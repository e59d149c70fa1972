package feed

import (
	"fmt"
	"strings"
)

// URLPlaceholder is the substitution point in a destination URL template.
const URLPlaceholder = "{reporting_label}"

const (
	headlineKey   = "H1"
	frame1Key     = "S1"
	secondaryKey  = "S2_"
	assetFileType = ".png"
)

// Build enumerates every (format, character, secondary text) combination in
// input order: formats outermost, secondary texts innermost. It does not
// validate the input; callers that accept external data should use
// BuildValidated.
func Build(in Input) *Feed {
	rows := make([]Row, 0, in.Combinations())
	seq := 0
	for _, format := range in.Formats {
		for ci, character := range in.Characters {
			for si, text := range in.SecondaryTexts {
				seq++
				label := ReportingLabel(seq, character.ID, format.Name, si+1)
				rows = append(rows, Row{
					SequenceID:     seq,
					ReportingLabel: label,
					Format:         format,
					Character:      character,
					Headline:       in.Constants.Headline,
					Frame1Text:     in.Constants.Frame1Text,
					SecondaryText:  text,
					SecondaryIndex: si + 1,
					AssetFilename:  AssetFilename(character.ID, format.Name),
					DestinationURL: DestinationURL(in.URLTemplate, label),
					IsDefault:      ci == 0 && si == 0,
					IsActive:       true,
				})
			}
		}
	}
	return &Feed{
		Rows:      rows,
		Reference: BuildReference(in),
	}
}

// BuildValidated validates the input and then builds the feed. No rows are
// produced when validation fails.
func BuildValidated(in Input) (*Feed, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return Build(in), nil
}

// BuildReference projects the texts, characters, and formats lookup tables.
func BuildReference(in Input) Reference {
	texts := make([]TextEntry, 0, len(in.SecondaryTexts)+2)
	texts = append(texts,
		TextEntry{Key: headlineKey, Value: in.Constants.Headline},
		TextEntry{Key: frame1Key, Value: in.Constants.Frame1Text},
	)
	for i, text := range in.SecondaryTexts {
		texts = append(texts, TextEntry{Key: SecondaryTextKey(i + 1), Value: text})
	}

	assetFormats := make([]string, 0, len(in.Formats))
	for _, format := range in.Formats {
		assetFormats = append(assetFormats, format.Name)
	}

	characters := make([]CharacterEntry, 0, len(in.Characters))
	for _, character := range in.Characters {
		assets := make([]string, 0, len(in.Formats))
		for _, format := range in.Formats {
			assets = append(assets, AssetFilename(character.ID, format.Name))
		}
		characters = append(characters, CharacterEntry{
			ID:          character.ID,
			DisplayName: character.DisplayName,
			Assets:      assets,
		})
	}

	formats := make([]Format, len(in.Formats))
	copy(formats, in.Formats)

	return Reference{
		Texts:        texts,
		Characters:   characters,
		AssetFormats: assetFormats,
		Formats:      formats,
	}
}

// ReportingLabel formats the attribution label for a row.
func ReportingLabel(sequenceID int, characterID, formatName string, secondaryIndex int) string {
	return fmt.Sprintf("%03d_%s_%s_S%d", sequenceID, characterID, formatName, secondaryIndex)
}

// AssetFilename names the character artwork for a format.
func AssetFilename(characterID, formatName string) string {
	return characterID + "_" + formatName + assetFileType
}

// DestinationURL substitutes the reporting label into the first placeholder
// of template. The label is inserted as-is.
func DestinationURL(template, label string) string {
	return strings.Replace(template, URLPlaceholder, label, 1)
}

// SecondaryTextKey returns the texts-table key for a 1-based variant index.
func SecondaryTextKey(index int) string {
	return fmt.Sprintf("%s%d", secondaryKey, index)
}
