package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dcofeed/internal/feed"
	"dcofeed/internal/sink"
)

func TestGenerateWritesBuiltInCampaign(t *testing.T) {
	env := setupCLITestEnv(t, "json")

	out, _, err := runCLI(t, []string{"generate"}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	requireContains(t, out, "== Feed generated ==")
	requireContains(t, out, "[OK] 24")
	requireContains(t, out, "GDF Uniforme Escolar")

	artifact := filepath.Join(env.outputDir, "DCO_GDF_UNIFORME_ESCOLAR.json")
	data, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	var doc struct {
		Combinations int        `json:"combinations"`
		Rows         []feed.Row `json:"rows"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode artifact: %v", err)
	}
	if doc.Combinations != 24 || len(doc.Rows) != 24 {
		t.Fatalf("expected 24 rows, got %d/%d", doc.Combinations, len(doc.Rows))
	}
	if doc.Rows[0].ReportingLabel != "001_menina01_300x250_S1" {
		t.Fatalf("unexpected first label %q", doc.Rows[0].ReportingLabel)
	}
}

func TestGenerateRefusesToReplaceWithoutOverwrite(t *testing.T) {
	env := setupCLITestEnv(t, "csv")

	if _, _, err := runCLI(t, []string{"generate"}, env.configPath); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	_, _, err := runCLI(t, []string{"generate"}, env.configPath)
	if !errors.Is(err, sink.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"generate", "--overwrite"}, env.configPath); err != nil {
		t.Fatalf("generate --overwrite: %v", err)
	}
}

func TestGenerateFlagOverrides(t *testing.T) {
	env := setupCLITestEnv(t, "json")
	target := filepath.Join(env.baseDir, "custom", "personagens.csv")

	out, _, err := runCLI(t, []string{
		"generate", "--format", "csv", "--table", "characters", "--output", target, "--json",
	}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var summary generateJSON
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode summary: %v\n%s", err, out)
	}
	if summary.Path != target || summary.Format != "csv" || summary.Rows != 24 || summary.Defaults != 4 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	requireContains(t, string(data), "ID,Nome,Asset_300x250")
	requireContains(t, string(data), "menina01_970x250.png")
}

func TestGenerateRejectsInvalidCampaign(t *testing.T) {
	env := setupCLITestEnv(t, "json")
	bad := filepath.Join(env.baseDir, "bad.yaml")
	content := "name: Broken\nheadline: H\nsecondary_texts: [A]\nurl_template: https://example.com/\ncharacters:\n  - id: a\nformats:\n  - name: 300x250\n"
	if err := os.WriteFile(bad, []byte(content), 0o644); err != nil {
		t.Fatalf("write campaign: %v", err)
	}

	_, _, err := runCLI(t, []string{"generate", "--campaign", bad}, env.configPath)
	if !errors.Is(err, feed.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if _, statErr := os.Stat(env.outputDir); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("no artifact directory expected, stat err %v", statErr)
	}
}

func TestGlobalLogFlagsAreValidated(t *testing.T) {
	env := setupCLITestEnv(t, "json")
	if _, _, err := runCLI(t, []string{"--log-level", "loud", "generate"}, env.configPath); err == nil {
		t.Fatalf("expected invalid log level to fail")
	}
	if _, _, err := runCLI(t, []string{"--log-format", "xml", "generate"}, env.configPath); err == nil {
		t.Fatalf("expected invalid log format to fail")
	}
}
