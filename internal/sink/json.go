package sink

import (
	"context"
	"encoding/json"
	"io"

	"dcofeed/internal/feed"
)

// JSON writes the whole feed, reference tables included, as one document.
type JSON struct{}

type jsonDocument struct {
	Fingerprint  string         `json:"fingerprint"`
	Combinations int            `json:"combinations"`
	Rows         []feed.Row     `json:"rows"`
	Reference    feed.Reference `json:"reference"`
}

func (JSON) Format() string    { return "json" }
func (JSON) Extension() string { return ".json" }

func (j JSON) WriteFile(ctx context.Context, path string, f *feed.Feed) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return renderFile(path, j, f)
}

func (JSON) Render(w io.Writer, f *feed.Feed) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonDocument{
		Fingerprint:  f.Fingerprint().String(),
		Combinations: f.Len(),
		Rows:         f.Rows,
		Reference:    f.Reference,
	})
}
