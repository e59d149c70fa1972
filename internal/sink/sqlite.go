package sink

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"

	"dcofeed/internal/feed"
)

//go:embed schema.sql
var schemaSQL string

// SchemaVersion is recorded in every database the SQLite sink writes.
const SchemaVersion = 1

// SQLite writes the feed and its reference tables into a fresh database file.
type SQLite struct{}

func (SQLite) Format() string    { return "sqlite" }
func (SQLite) Extension() string { return ".db" }

// WriteFile expects path to be empty or absent; the schema is created from
// scratch.
func (SQLite) WriteFile(ctx context.Context, path string, f *feed.Feed) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("apply pragma: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO feed_meta (fingerprint, combinations) VALUES (?, ?)",
		f.Fingerprint().String(), f.Len(),
	); err != nil {
		return fmt.Errorf("insert feed meta: %w", err)
	}

	if err := insertReference(ctx, tx, f.Reference); err != nil {
		return err
	}
	if err := insertRows(ctx, tx, f.Rows); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertReference(ctx context.Context, tx *sql.Tx, ref feed.Reference) error {
	for i, format := range ref.Formats {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO formats (position, name, width, height, kind) VALUES (?, ?, ?, ?, ?)",
			i+1, format.Name, format.Width, format.Height, format.Kind,
		); err != nil {
			return fmt.Errorf("insert format %s: %w", format.Name, err)
		}
	}

	for i, character := range ref.Characters {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO characters (position, id, display_name) VALUES (?, ?, ?)",
			i+1, character.ID, character.DisplayName,
		); err != nil {
			return fmt.Errorf("insert character %s: %w", character.ID, err)
		}
		for j, asset := range character.Assets {
			if j >= len(ref.AssetFormats) {
				break
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO character_assets (character_id, format_name, asset_filename) VALUES (?, ?, ?)",
				character.ID, ref.AssetFormats[j], asset,
			); err != nil {
				return fmt.Errorf("insert asset %s: %w", asset, err)
			}
		}
	}

	for i, entry := range ref.Texts {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO texts (position, key, value) VALUES (?, ?, ?)",
			i+1, entry.Key, entry.Value,
		); err != nil {
			return fmt.Errorf("insert text %s: %w", entry.Key, err)
		}
	}
	return nil
}

func insertRows(ctx context.Context, tx *sql.Tx, rows []feed.Row) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO feed_rows (
            sequence_id, reporting_label, format_name, character_id,
            headline, frame1_text, secondary_text, secondary_index,
            asset_filename, destination_url, is_default, is_active
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare row insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx,
			row.SequenceID,
			row.ReportingLabel,
			row.Format.Name,
			row.Character.ID,
			row.Headline,
			row.Frame1Text,
			row.SecondaryText,
			row.SecondaryIndex,
			row.AssetFilename,
			row.DestinationURL,
			boolToInt(row.IsDefault),
			boolToInt(row.IsActive),
		); err != nil {
			return fmt.Errorf("insert row %s: %w", row.ReportingLabel, err)
		}
	}
	return nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
