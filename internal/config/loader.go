package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DirName is the name of both the global and the project configuration
// directory.
const DirName = ".tisk"

// envPrefix prefixes environment overrides, e.g. TISK_DISPLAY_WIDTH.
const envPrefix = "TISK"

// envKeys lists the settings that may be overridden from the environment.
var envKeys = []string{
	"storage.backend",
	"storage.database",
	"display.width",
	"display.split_limit",
	"display.date_format",
	"log.level",
}

// Load loads and merges configuration from global and project sources.
// projectDir is the project's .tisk directory, or empty outside a project.
// Missing files are skipped; a file that cannot be parsed is an error.
func Load(projectDir string) (*Config, error) {
	cfg := DefaultConfig()

	// Load global config first
	if home, err := os.UserHomeDir(); err == nil {
		if err := loadFile(filepath.Join(home, DirName, "config.yaml"), cfg); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load global config: %w", err)
		}
	}

	// Load project config (overrides global)
	if projectDir != "" {
		if err := loadFile(filepath.Join(projectDir, "config.yaml"), cfg); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load project config: %w", err)
		}
	}

	// Environment overrides both
	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

func loadEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	set := false
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return err
		}
		if v.IsSet(key) {
			set = true
		}
	}
	if !set {
		return nil
	}

	overrides := make(map[string]any)
	for _, key := range envKeys {
		if v.IsSet(key) {
			overrides[key] = v.Get(key)
		}
	}

	merged := viper.New()
	for key, value := range overrides {
		merged.Set(key, value)
	}
	return merged.Unmarshal(cfg)
}

// Validate reports settings no command can work with.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("invalid storage.backend %q: expected file or sqlite", c.Storage.Backend)
	}
	if c.Display.Width < 0 {
		return fmt.Errorf("invalid display.width %d: must not be negative", c.Display.Width)
	}
	if c.Display.SplitLimit < 0 {
		return fmt.Errorf("invalid display.split_limit %d: must not be negative", c.Display.SplitLimit)
	}
	if c.Display.DateFormat == "" {
		return fmt.Errorf("invalid display.date_format: must not be empty")
	}
	return nil
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DirName, "config.yaml")
}

// ProjectConfigPath returns the path to the config file of the project
// whose .tisk directory is projectDir.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, "config.yaml")
}
