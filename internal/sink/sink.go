package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"dcofeed/internal/feed"
	"dcofeed/internal/fileutil"
)

var (
	// ErrUnsupportedFormat is returned by For for unknown format names.
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrExists is returned by Save when the artifact exists and overwrite is off.
	ErrExists = errors.New("artifact already exists")
	// ErrLocked is returned by Save when another writer holds the artifact lock.
	ErrLocked = errors.New("artifact is locked by another writer")
)

// Sink persists a feed in one document format.
type Sink interface {
	Format() string
	Extension() string
	// WriteFile writes the complete document to path, replacing its content.
	WriteFile(ctx context.Context, path string, f *feed.Feed) error
}

// Renderer is a Sink that can also stream its document.
type Renderer interface {
	Sink
	Render(w io.Writer, f *feed.Feed) error
}

// TableRenderer streams a single table in the sink's style.
type TableRenderer interface {
	RenderTable(w io.Writer, t feed.Table) error
}

// Options tune sink construction.
type Options struct {
	// Table selects the table for single-table formats.
	Table feed.TableKey
}

type factory func(Options) Sink

var registry = map[string]factory{
	"xlsx":     func(Options) Sink { return XLSX{} },
	"sqlite":   func(Options) Sink { return SQLite{} },
	"json":     func(Options) Sink { return JSON{} },
	"csv":      func(o Options) Sink { return newPretty(styleCSV, o.Table) },
	"markdown": func(o Options) Sink { return newPretty(styleMarkdown, o.Table) },
	"html":     func(o Options) Sink { return newPretty(styleHTML, o.Table) },
	"text":     func(o Options) Sink { return newPretty(styleText, o.Table) },
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// For resolves a sink by format name.
func For(format string, opts Options) (Sink, error) {
	build, ok := registry[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, format, strings.Join(Formats(), ", "))
	}
	return build(opts), nil
}

// Save writes f to path through s. It holds the artifact lock for the whole
// write and only replaces an existing file when overwrite is set.
func Save(ctx context.Context, s Sink, path string, f *feed.Feed, overwrite bool) error {
	if f == nil {
		return errors.New("save feed: nil feed")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	lock, err := acquireLock(path)
	if err != nil {
		return err
	}
	defer lock.release()

	exists, err := fileutil.Exists(path)
	if err != nil {
		return fmt.Errorf("check artifact: %w", err)
	}
	if exists && !overwrite {
		return fmt.Errorf("%w: %s (use --overwrite to replace it)", ErrExists, path)
	}

	if r, ok := s.(Renderer); ok {
		err = fileutil.WriteAtomic(path, func(w io.Writer) error {
			return r.Render(w, f)
		})
	} else {
		err = fileutil.ReplaceAtomic(path, func(tmpPath string) error {
			return s.WriteFile(ctx, tmpPath, f)
		})
	}
	if err != nil {
		return fmt.Errorf("write %s document: %w", s.Format(), err)
	}
	return nil
}

// renderFile implements WriteFile for streaming sinks.
func renderFile(path string, r Renderer, f *feed.Feed) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := r.Render(out, f); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
