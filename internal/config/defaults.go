package config

const (
	defaultConfigPath   = "~/.config/dcofeed/config.toml"
	defaultOutputDir    = "."
	defaultOutputFormat = FormatXLSX
	defaultOutputTable  = "feed"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Output formats accepted in output.format.
const (
	FormatXLSX     = "xlsx"
	FormatSQLite   = "sqlite"
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatText     = "text"
)

// OutputFormats lists every supported output.format value.
var OutputFormats = []string{
	FormatXLSX,
	FormatSQLite,
	FormatJSON,
	FormatCSV,
	FormatMarkdown,
	FormatHTML,
	FormatText,
}

var outputTables = []string{"feed", "texts", "characters", "formats"}

var formatAliases = map[string]string{
	"excel": FormatXLSX,
	"db":    FormatSQLite,
	"md":    FormatMarkdown,
	"txt":   FormatText,
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Table:  defaultOutputTable,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
