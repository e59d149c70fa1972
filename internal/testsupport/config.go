package testsupport

import (
	"path/filepath"
	"testing"

	"dcofeed/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.LogDir = ""
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithOutputFormat sets output.format.
func WithOutputFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// WithFileName sets output.file_name.
func WithFileName(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.FileName = name
	}
}

// WithTable sets output.table.
func WithTable(table string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Table = table
	}
}

// WithOverwrite sets output.overwrite.
func WithOverwrite(overwrite bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Overwrite = overwrite
	}
}

// WithLogDir enables file logging under the config's temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = filepath.Join(b.baseDir, "logs")
	}
}

// WithCampaign writes c into the temp directory and points
// paths.campaign_file at it.
func WithCampaign(c CampaignSpec) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.CampaignFile = WriteCampaign(b.t, filepath.Join(b.baseDir, "campaign.toml"), c)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
