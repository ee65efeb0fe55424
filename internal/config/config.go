// Package config loads settings for the babybear CLI from the environment.
// A .env file in the working directory is read first when present.
package config

// Config holds all CLI configuration
type Config struct {
	Logging LoggingConfig
	Preview PreviewConfig
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"BABYBEAR_LOG_LEVEL" default:"info"`

	// Format is the console log format: text or json (default: text)
	Format string `env:"BABYBEAR_LOG_FORMAT" default:"text"`

	// SeqURL enables shipping logs to a Seq server when set
	SeqURL string `env:"BABYBEAR_SEQ_URL"`
}

// PreviewConfig controls how tables are displayed
type PreviewConfig struct {
	// Rows is how many rows to show at each end of a long table (default: 3)
	Rows int `env:"BABYBEAR_PREVIEW_ROWS" default:"3"`

	// Threshold is the row count above which output is truncated (default: 10)
	Threshold int `env:"BABYBEAR_PREVIEW_THRESHOLD" default:"10"`
}
