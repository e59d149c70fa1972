package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dcofeed/internal/feed"
)

func TestCampaignInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t, "json")
	target := filepath.Join(env.baseDir, "campaigns", "gdf.toml")

	out, _, err := runCLI(t, []string{"campaign", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("campaign init: %v", err)
	}
	requireContains(t, out, "Wrote sample campaign")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected campaign at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"campaign", "init", "--path", target}, ""); err == nil {
		t.Fatalf("expected second init without --overwrite to fail")
	}

	out, _, err = runCLI(t, []string{"campaign", "validate", "--campaign", target}, env.configPath)
	if err != nil {
		t.Fatalf("campaign validate: %v", err)
	}
	requireContains(t, out, "Combinations:")
	requireContains(t, out, "[OK] 24")
	requireContains(t, out, "Campaign valid")
}

func TestCampaignValidateReportsConfigurationError(t *testing.T) {
	env := setupCLITestEnv(t, "json")
	bad := filepath.Join(env.baseDir, "dup.toml")
	content := `name = "Dup"
headline = "H"
secondary_texts = ["A"]
url_template = "https://example.com/?l={reporting_label}"

[[characters]]
id = "a"

[[characters]]
id = "a"

[[formats]]
name = "300x250"
`
	if err := os.WriteFile(bad, []byte(content), 0o644); err != nil {
		t.Fatalf("write campaign: %v", err)
	}

	_, _, err := runCLI(t, []string{"campaign", "validate", "--campaign", bad}, env.configPath)
	if !errors.Is(err, feed.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
