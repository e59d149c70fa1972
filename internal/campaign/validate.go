package campaign

import (
	"net/url"
	"strings"

	"dcofeed/internal/feed"
)

// Validate ensures the campaign can produce a usable feed. Errors are
// *feed.ConfigurationError.
func (c *Campaign) Validate() error {
	if err := c.Input().Validate(); err != nil {
		return err
	}
	if c.Headline == "" {
		return feed.NewConfigurationError("headline", "must be set")
	}
	// Entries map one-to-one to S<n> indexes, so blanks are rejected, not skipped.
	for i, text := range c.SecondaryTexts {
		if strings.TrimSpace(text) == "" {
			return feed.NewConfigurationError("secondary_texts", "entry %d is empty", i+1)
		}
	}
	if err := validateURLTemplate(c.URLTemplate); err != nil {
		return err
	}
	for _, f := range c.Formats {
		if f.Width <= 0 || f.Height <= 0 {
			return feed.NewConfigurationError("formats", "format %q needs positive width and height", f.Name)
		}
		if strings.Contains(f.Name, "_") {
			return feed.NewConfigurationError("formats", "format %q must not contain underscores (reporting labels use them as separators)", f.Name)
		}
	}
	return nil
}

func validateURLTemplate(template string) error {
	if template == "" {
		return feed.NewConfigurationError("url_template", "must be set")
	}
	switch n := strings.Count(template, feed.URLPlaceholder); n {
	case 1:
	case 0:
		return feed.NewConfigurationError("url_template", "missing %s placeholder", feed.URLPlaceholder)
	default:
		return feed.NewConfigurationError("url_template", "placeholder %s appears %d times, want exactly once", feed.URLPlaceholder, n)
	}
	parsed, err := url.Parse(strings.Replace(template, feed.URLPlaceholder, "label", 1))
	if err != nil {
		return feed.NewConfigurationError("url_template", "not a valid URL: %v", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return feed.NewConfigurationError("url_template", "scheme must be http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return feed.NewConfigurationError("url_template", "missing host")
	}
	return nil
}
