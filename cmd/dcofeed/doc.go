// Package main hosts the dcofeed CLI entrypoint and command graph.
//
// The Cobra command tree loads configuration once per invocation, applies
// global flag overrides, and hands work to the internal packages: generator
// for persisted artifacts, sink for previews, campaign for scaffolding and
// validation, and feed for reporting-label parsing.
//
// Keep this package thin. New behavior belongs in internal packages first and
// is surfaced here through flags and output formatting.
package main
