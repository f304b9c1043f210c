package config

// Config represents the full tisk configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Where tasks are persisted
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Table rendering
	Display DisplayConfig `yaml:"display" mapstructure:"display"`

	// Logging
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// StorageConfig selects the task store
type StorageConfig struct {
	Backend  string `yaml:"backend" mapstructure:"backend"`
	Database string `yaml:"database,omitempty" mapstructure:"database"`
}

// DisplayConfig configures table output
type DisplayConfig struct {
	// Width overrides the terminal width when non-zero
	Width      int    `yaml:"width" mapstructure:"width"`
	SplitLimit int    `yaml:"split_limit" mapstructure:"split_limit"`
	DateFormat string `yaml:"date_format" mapstructure:"date_format"`
}

// LogConfig configures the default logger
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}
