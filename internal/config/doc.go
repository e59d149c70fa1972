// Package config loads, normalizes, and validates dcofeed configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and overlays DCOFEED_* environment variables
// (optionally sourced from a .env file). The Config type centralizes where
// campaigns are read from, where artifacts are written, which document format
// is produced, and how logs are emitted.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical format names, and clear validation errors.
package config
