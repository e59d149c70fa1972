package campaign_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"

	"dcofeed/internal/campaign"
	"dcofeed/internal/feed"
)

func TestDefaultCampaignBuildsTwentyFourRows(t *testing.T) {
	c := campaign.Default()
	f, err := c.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if f.Len() != 24 {
		t.Fatalf("expected 24 rows, got %d", f.Len())
	}
	if got := len(f.Defaults()); got != 4 {
		t.Fatalf("expected 4 default rows, got %d", got)
	}
	last := f.Rows[len(f.Rows)-1]
	if last.ReportingLabel != "024_menino02_970x250_S2" {
		t.Fatalf("unexpected last label %q", last.ReportingLabel)
	}
	if !strings.HasSuffix(last.DestinationURL, "utm_content=024_menino02_970x250_S2") {
		t.Fatalf("unexpected last url %q", last.DestinationURL)
	}
}

func TestSampleMatchesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.toml")
	if err := campaign.WriteSample(path, false); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	loaded, err := campaign.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(campaign.Default(), *loaded); diff != "" {
		t.Fatalf("sample differs from default (-default +sample):\n%s", diff)
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.toml")
	if err := os.WriteFile(path, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := campaign.WriteSample(path, false); err == nil {
		t.Fatal("expected error when file exists")
	}
	if err := campaign.WriteSample(path, true); err != nil {
		t.Fatalf("WriteSample overwrite: %v", err)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	c, err := campaign.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Name != campaign.Default().Name {
		t.Fatalf("unexpected campaign %q", c.Name)
	}
}

func TestLoadYAMLNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	content := `
name: "  Teste  "
headline: "H"
frame1_text: "F1"
secondary_texts:
  - "Texto A"
  - "  Texto B "
url_template: "https://example.com/?c={reporting_label}"
characters:
  - name: "Menina com Tranças"
  - id: "menino01"
    name: "Menino"
formats:
  - name: "300x250"
    kind: "Medium Rectangle"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := campaign.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Name != "Teste" {
		t.Fatalf("name not trimmed: %q", c.Name)
	}
	if diff := cmp.Diff([]string{"Texto A", "Texto B"}, c.SecondaryTexts); diff != "" {
		t.Fatalf("secondary texts (-want +got):\n%s", diff)
	}
	if c.Characters[0].ID != "menina_com_trancas" {
		t.Fatalf("derived id = %q", c.Characters[0].ID)
	}
	if c.Formats[0].Width != 300 || c.Formats[0].Height != 250 {
		t.Fatalf("derived dimensions = %dx%d", c.Formats[0].Width, c.Formats[0].Height)
	}

	in := c.Input()
	if in.Combinations() != 4 {
		t.Fatalf("expected 4 combinations, got %d", in.Combinations())
	}
}

func TestLoadRejectsBlankSecondaryText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	content := `
headline: "H"
secondary_texts:
  - "Texto A"
  - "   "
  - "Texto B"
url_template: "https://example.com/?c={reporting_label}"
characters:
  - id: "menina01"
formats:
  - name: "300x250"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := campaign.Load(path)
	var cfgErr *feed.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *feed.ConfigurationError, got %v", err)
	}
	if cfgErr.Field != "secondary_texts" {
		t.Fatalf("field = %q, want secondary_texts", cfgErr.Field)
	}
	if !strings.Contains(err.Error(), "entry 2") {
		t.Fatalf("error should name the blank entry: %v", err)
	}
}

func TestLoadTOMLRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.toml")
	if err := os.WriteFile(path, []byte("headline = \"H\"\nbogus = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := campaign.Load(path); err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := campaign.Load(path)
	if !errors.Is(err, feed.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := map[string]struct {
		mutate func(*campaign.Campaign)
		field  string
	}{
		"no formats":         {func(c *campaign.Campaign) { c.Formats = nil }, "formats"},
		"no characters":      {func(c *campaign.Campaign) { c.Characters = nil }, "characters"},
		"no secondary texts": {func(c *campaign.Campaign) { c.SecondaryTexts = nil }, "secondary_texts"},
		"blank secondary text": {func(c *campaign.Campaign) {
			c.SecondaryTexts = append(c.SecondaryTexts, "  ")
		}, "secondary_texts"},
		"duplicate character": {func(c *campaign.Campaign) { c.Characters[1].ID = c.Characters[0].ID }, "characters"},
		"duplicate format":    {func(c *campaign.Campaign) { c.Formats[1] = c.Formats[0] }, "formats"},
		"blank headline":      {func(c *campaign.Campaign) { c.Headline = "" }, "headline"},
		"no placeholder":      {func(c *campaign.Campaign) { c.URLTemplate = "https://example.com/" }, "url_template"},
		"double placeholder": {func(c *campaign.Campaign) {
			c.URLTemplate = "https://example.com/{reporting_label}?c={reporting_label}"
		}, "url_template"},
		"bad scheme":      {func(c *campaign.Campaign) { c.URLTemplate = "ftp://example.com/{reporting_label}" }, "url_template"},
		"zero dimensions": {func(c *campaign.Campaign) { c.Formats[0].Width = 0 }, "formats"},
		"underscore format": {func(c *campaign.Campaign) {
			c.Formats[0].Name = "300_250"
		}, "formats"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := campaign.Default()
			tc.mutate(&c)
			err := c.Validate()
			var cfgErr *feed.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *feed.ConfigurationError, got %v", err)
			}
			if cfgErr.Field != tc.field {
				t.Fatalf("field = %q, want %q", cfgErr.Field, tc.field)
			}
			if f, err := c.Build(); err == nil || f != nil {
				t.Fatal("Build should fail without emitting rows")
			}
		})
	}
}

func TestTOMLRoundTripOfCustomCampaign(t *testing.T) {
	c := campaign.Default()
	c.Formats = c.Formats[:1]
	c.Characters = c.Characters[:1]
	data, err := toml.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "one.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := campaign.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f, err := loaded.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if f.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", f.Len())
	}
}
