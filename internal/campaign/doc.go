// Package campaign loads, normalizes, and validates the creative inputs that
// drive feed enumeration.
//
// A Campaign names the characters, formats, copy lines, and destination URL
// template for one DCO flight. Campaigns are read from TOML or YAML files (the
// extension decides) or taken from the built-in default, normalized (trimmed,
// IDs derived from display names, dimensions derived from WxH format names),
// and validated before conversion into feed.Input. Validation failures are
// feed.ConfigurationError values so callers can classify them with errors.Is.
package campaign
