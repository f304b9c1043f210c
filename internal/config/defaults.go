package config

import (
	"os"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Storage: StorageConfig{
			Backend: "file",
		},
		Display: DisplayConfig{
			SplitLimit: 7,
			DateFormat: "2006-01-02",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// WriteProjectDefault writes the default project configuration to a file
func WriteProjectDefault(path string) error {
	content := `# tisk Project Configuration
version: "1"

# Task storage
storage:
  backend: file  # "file" (one YAML file per task) or "sqlite"
  # database: tasks.db  # used by the sqlite backend, relative to .tisk

# Override global settings as needed
# display:
#   width: 0          # 0 = use the terminal width
#   split_limit: 7    # words longer than this may be hyphenated
#   date_format: "2006-01-02"
# log:
#   level: info
`
	return os.WriteFile(path, []byte(content), 0644)
}
