package feed_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"dcofeed/internal/feed"
)

func TestTablesLayout(t *testing.T) {
	f := feed.Build(sampleInput())
	tables := feed.Tables(f)

	var names []string
	for _, table := range tables {
		names = append(names, table.Name)
	}
	want := []string{feed.TableFeed, feed.TableTexts, feed.TableCharacters, feed.TableFormats}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("table names (-want +got):\n%s", diff)
	}

	main := tables[0]
	if len(main.Rows) != f.Len() {
		t.Fatalf("feed table has %d rows, want %d", len(main.Rows), f.Len())
	}
	first := main.StringRows()[0]
	wantFirst := []string{
		"1", "001_menina01_300x250_S1", "300x250", "300", "250",
		"menina01", "menina01_300x250.png", "H", "F1", "Texto A",
		"https://example.com/landing?utm_content=001_menina01_300x250_S1",
		"TRUE", "TRUE",
	}
	if diff := cmp.Diff(wantFirst, first); diff != "" {
		t.Fatalf("first feed row (-want +got):\n%s", diff)
	}
	if got := main.StringRows()[1][11]; got != "FALSE" {
		t.Fatalf("second row default: got %q want FALSE", got)
	}
}

func TestCharactersTableHasColumnPerFormat(t *testing.T) {
	f := feed.Build(sampleInput())
	table := feed.CharactersTable(f.Reference)
	wantHeaders := []string{"ID", "Nome", "Asset_300x250", "Asset_468x60", "Asset_728x90"}
	if diff := cmp.Diff(wantHeaders, table.Headers()); diff != "" {
		t.Fatalf("headers (-want +got):\n%s", diff)
	}
	for _, row := range table.Rows {
		if len(row) != len(wantHeaders) {
			t.Fatalf("row width %d, want %d", len(row), len(wantHeaders))
		}
	}
}

func TestTableByKey(t *testing.T) {
	f := feed.Build(sampleInput())
	for _, key := range feed.TableKeys {
		table, err := feed.TableByKey(f, key)
		if err != nil {
			t.Fatalf("TableByKey(%q): %v", key, err)
		}
		if table.Key != key {
			t.Fatalf("TableByKey(%q) returned %q", key, table.Key)
		}
	}
	if _, err := feed.TableByKey(f, "bogus"); err == nil {
		t.Fatal("expected error for unknown table")
	}
}

func TestCellString(t *testing.T) {
	cases := []struct {
		in   feed.Cell
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{42, "42"},
		{true, "TRUE"},
		{false, "FALSE"},
		{3.5, "3.5"},
	}
	for _, tc := range cases {
		if got := feed.CellString(tc.in); got != tc.want {
			t.Fatalf("CellString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
