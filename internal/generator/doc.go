// Package generator runs one feed generation end to end: it loads the
// campaign, enumerates and validates the feed, resolves the artifact path and
// sink from configuration, and persists the document through sink.Save.
//
// Every run carries a correlation ID in its context so the console and JSON
// log handlers can tie the started, written, and failed events together.
package generator
