package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.CampaignFile, err = expandPath(strings.TrimSpace(c.Paths.CampaignFile)); err != nil {
		return fmt.Errorf("paths.campaign_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.Format = NormalizeFormat(c.Output.Format)
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Table = strings.ToLower(strings.TrimSpace(c.Output.Table))
	if c.Output.Table == "" {
		c.Output.Table = defaultOutputTable
	}
	c.Output.FileName = strings.TrimSpace(c.Output.FileName)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// NormalizeFormat lowercases a format name and resolves aliases such as
// "excel" and "md".
func NormalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if alias, ok := formatAliases[format]; ok {
		return alias
	}
	return format
}
