package feed

// Validate checks the caller contract of Build: every collection is non-empty
// and character IDs and format names are unique.
func (in Input) Validate() error {
	if len(in.Formats) == 0 {
		return NewConfigurationError("formats", "at least one format is required")
	}
	if len(in.Characters) == 0 {
		return NewConfigurationError("characters", "at least one character is required")
	}
	if len(in.SecondaryTexts) == 0 {
		return NewConfigurationError("secondary_texts", "at least one secondary text is required")
	}

	formats := make(map[string]struct{}, len(in.Formats))
	for i, format := range in.Formats {
		if format.Name == "" {
			return NewConfigurationError("formats", "entry %d has an empty name", i+1)
		}
		if _, exists := formats[format.Name]; exists {
			return NewConfigurationError("formats", "duplicate format %q", format.Name)
		}
		formats[format.Name] = struct{}{}
	}

	characters := make(map[string]struct{}, len(in.Characters))
	for i, character := range in.Characters {
		if character.ID == "" {
			return NewConfigurationError("characters", "entry %d has an empty id", i+1)
		}
		if _, exists := characters[character.ID]; exists {
			return NewConfigurationError("characters", "duplicate character %q", character.ID)
		}
		characters[character.ID] = struct{}{}
	}
	return nil
}
