package main

import (
	"encoding/json"
	"errors"
	"testing"

	"dcofeed/internal/feed"
)

func TestLabelCommandTable(t *testing.T) {
	out, _, err := runCLI(t, []string{"label", "001_menina01_300x250_S1", "017_menino_02_728x90_S2"}, "")
	if err != nil {
		t.Fatalf("label: %v", err)
	}
	requireContains(t, out, "menina01")
	requireContains(t, out, "menino_02")
	requireContains(t, out, "728x90")
	requireContains(t, out, "S2_2 (2)")
}

func TestLabelCommandJSON(t *testing.T) {
	out, _, err := runCLI(t, []string{"label", "--json", "003_menino01_468x60_S2"}, "")
	if err != nil {
		t.Fatalf("label: %v", err)
	}
	var parsed []labelJSON
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := labelJSON{Label: "003_menino01_468x60_S2", SequenceID: 3, CharacterID: "menino01", FormatName: "468x60", SecondaryIndex: 2}
	if len(parsed) != 1 || parsed[0] != want {
		t.Fatalf("parsed = %+v, want %+v", parsed, want)
	}
}

func TestLabelCommandRejectsMalformed(t *testing.T) {
	_, _, err := runCLI(t, []string{"label", "not-a-label"}, "")
	if !errors.Is(err, feed.ErrInvalidLabel) {
		t.Fatalf("expected ErrInvalidLabel, got %v", err)
	}
}
