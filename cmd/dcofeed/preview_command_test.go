package main

import (
	"strings"
	"testing"
)

func TestPreviewTextShowsSummaryAndTables(t *testing.T) {
	env := setupCLITestEnv(t, "xlsx")

	out, _, err := runCLI(t, []string{"preview"}, env.configPath)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	requireContains(t, out, "== GDF Uniforme Escolar ==")
	requireContains(t, out, "[OK] 24")
	requireContains(t, out, "Feed_Principal")
	requireContains(t, out, "024_menino02_970x250_S2")
}

func TestPreviewCSVSingleTable(t *testing.T) {
	env := setupCLITestEnv(t, "xlsx")

	out, _, err := runCLI(t, []string{"preview", "--format", "csv", "--table", "texts"}, env.configPath)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.HasPrefix(out, "Chave,Texto") {
		t.Fatalf("expected bare csv output, got:\n%s", out)
	}
	requireContains(t, out, "S2_2,")
}

func TestPreviewMarkdownSingleTable(t *testing.T) {
	env := setupCLITestEnv(t, "xlsx")

	out, _, err := runCLI(t, []string{"preview", "--format", "md", "--table", "formats"}, env.configPath)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	requireContains(t, out, "Billboard")
	if strings.Contains(out, "Reporting_Label") {
		t.Fatalf("expected only the formats table, got:\n%s", out)
	}
}

func TestPreviewRejectsBinaryFormats(t *testing.T) {
	env := setupCLITestEnv(t, "xlsx")

	for _, format := range []string{"xlsx", "sqlite"} {
		if _, _, err := runCLI(t, []string{"preview", "--format", format}, env.configPath); err == nil {
			t.Fatalf("expected %s preview to fail", format)
		}
	}
}

func TestPreviewRejectsUnknownTable(t *testing.T) {
	env := setupCLITestEnv(t, "xlsx")

	if _, _, err := runCLI(t, []string{"preview", "--table", "assets"}, env.configPath); err == nil {
		t.Fatalf("expected unknown table to fail")
	}
}
