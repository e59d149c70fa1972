package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"dcofeed/internal/campaign"
	"dcofeed/internal/feed"
)

// CampaignSpec is the campaign type used by the builders below.
type CampaignSpec = campaign.Campaign

// CampaignOption customizes a test campaign.
type CampaignOption func(*campaign.Campaign)

// NewCampaign returns a small valid campaign: two formats, two characters,
// and two secondary texts.
func NewCampaign(opts ...CampaignOption) CampaignSpec {
	c := campaign.Campaign{
		Name:           "Test Campaign",
		Headline:       "Headline",
		Frame1Text:     "Frame one",
		SecondaryTexts: []string{"Variant A", "Variant B"},
		URLTemplate:    "https://example.com/landing?utm_content={reporting_label}",
		Characters: []campaign.Character{
			{ID: "alpha", Name: "Alpha"},
			{ID: "beta", Name: "Beta"},
		},
		Formats: []campaign.Format{
			{Name: "300x250", Width: 300, Height: 250, Kind: "Medium Rectangle"},
			{Name: "728x90", Width: 728, Height: 90, Kind: "Leaderboard"},
		},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithCampaignName overrides the campaign name.
func WithCampaignName(name string) CampaignOption {
	return func(c *campaign.Campaign) {
		c.Name = name
	}
}

// WithSecondaryTexts replaces the secondary text variants.
func WithSecondaryTexts(texts ...string) CampaignOption {
	return func(c *campaign.Campaign) {
		c.SecondaryTexts = append([]string(nil), texts...)
	}
}

// WithURLTemplate replaces the destination URL template.
func WithURLTemplate(template string) CampaignOption {
	return func(c *campaign.Campaign) {
		c.URLTemplate = template
	}
}

// WriteCampaign encodes c as TOML at path and returns path.
func WriteCampaign(t testing.TB, path string, c CampaignSpec) string {
	t.Helper()

	data, err := toml.Marshal(c)
	if err != nil {
		t.Fatalf("marshal campaign: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// NewFeed builds the feed of NewCampaign(opts...), failing the test on error.
func NewFeed(t testing.TB, opts ...CampaignOption) *feed.Feed {
	t.Helper()

	c := NewCampaign(opts...)
	f, err := c.Build()
	if err != nil {
		t.Fatalf("build feed: %v", err)
	}
	return f
}
