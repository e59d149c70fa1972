package campaign

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"dcofeed/internal/feed"
)

//go:embed sample_campaign.toml
var sampleCampaign string

// Character is a creative persona.
type Character struct {
	ID   string `toml:"id" yaml:"id"`
	Name string `toml:"name" yaml:"name"`
}

// Format is an ad placement size. Width and Height may be omitted when the
// name has the form WxH.
type Format struct {
	Name   string `toml:"name" yaml:"name"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Kind   string `toml:"kind" yaml:"kind"`
}

// Campaign holds every input of a feed build.
type Campaign struct {
	Name           string      `toml:"name" yaml:"name"`
	Headline       string      `toml:"headline" yaml:"headline"`
	Frame1Text     string      `toml:"frame1_text" yaml:"frame1_text"`
	SecondaryTexts []string    `toml:"secondary_texts" yaml:"secondary_texts"`
	URLTemplate    string      `toml:"url_template" yaml:"url_template"`
	Characters     []Character `toml:"characters" yaml:"characters"`
	Formats        []Format    `toml:"formats" yaml:"formats"`
}

// Load reads a campaign file, normalizes, and validates it. An empty path
// returns the built-in default campaign.
func Load(path string) (*Campaign, error) {
	if strings.TrimSpace(path) == "" {
		c := Default()
		return &c, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open campaign: %w", err)
	}
	defer file.Close()

	var c Campaign
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&c); err != nil {
			return nil, fmt.Errorf("parse campaign %s: %w", path, err)
		}
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(&c); err != nil {
			return nil, fmt.Errorf("parse campaign %s: %w", path, err)
		}
	default:
		return nil, feed.NewConfigurationError("campaign_file", "unsupported extension %q (want .toml, .yaml, or .yml)", ext)
	}

	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Input converts the campaign into enumeration input.
func (c *Campaign) Input() feed.Input {
	formats := make([]feed.Format, 0, len(c.Formats))
	for _, f := range c.Formats {
		formats = append(formats, feed.Format{Name: f.Name, Width: f.Width, Height: f.Height, Kind: f.Kind})
	}
	characters := make([]feed.Character, 0, len(c.Characters))
	for _, ch := range c.Characters {
		characters = append(characters, feed.Character{ID: ch.ID, DisplayName: ch.Name})
	}
	texts := make([]string, len(c.SecondaryTexts))
	copy(texts, c.SecondaryTexts)

	return feed.Input{
		Formats:        formats,
		Characters:     characters,
		SecondaryTexts: texts,
		Constants: feed.TextConstants{
			Headline:   c.Headline,
			Frame1Text: c.Frame1Text,
		},
		URLTemplate: c.URLTemplate,
	}
}

// Build validates the campaign and enumerates its feed.
func (c *Campaign) Build() (*feed.Feed, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return feed.BuildValidated(c.Input())
}

// WriteSample writes the annotated built-in campaign to path.
func WriteSample(path string, overwrite bool) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create campaign directory: %w", err)
		}
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("campaign file already exists at %s (use --overwrite to replace it)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("check campaign path: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleCampaign), 0o644); err != nil {
		return fmt.Errorf("write sample campaign: %w", err)
	}
	return nil
}
