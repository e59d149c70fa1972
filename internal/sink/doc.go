// Package sink renders enumerated feeds into persisted documents.
//
// Each Sink understands one document format: an Excel workbook (excelize), a
// SQLite database (modernc.org/sqlite), JSON, or one of the go-pretty table
// renderings (CSV, Markdown, HTML, plain text). Sinks that can stream also
// implement Renderer so the CLI can preview a feed on stdout.
//
// Save is the only way artifacts reach disk: it holds an exclusive flock on
// "<artifact>.lock", refuses to replace existing files unless asked, and
// writes through a temporary file that is renamed into place, so readers never
// observe a half-written document.
package sink
