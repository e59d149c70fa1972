package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("output.format %q is not supported (want one of %s)", c.Output.Format, strings.Join(OutputFormats, ", "))
	}
	if !slices.Contains(outputTables, c.Output.Table) {
		return fmt.Errorf("output.table %q is not supported (want one of %s)", c.Output.Table, strings.Join(outputTables, ", "))
	}
	if strings.ContainsAny(c.Output.FileName, `/\`) {
		return fmt.Errorf("output.file_name %q must not contain path separators; set paths.output_dir instead", c.Output.FileName)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not supported (want debug, info, warn, or error)", c.Logging.Level)
	}
}
