// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/brackets/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger   logger.Config `toml:"logger"`
	Brackets BracketConfig `toml:"brackets"`
	Editor   EditorConfig  `toml:"editor"`
}

// BracketConfig controls matching and how results are highlighted.
type BracketConfig struct {
	HighlightMatching bool `toml:"highlight_matching"`
	HighlightMismatch bool `toml:"highlight_mismatch"`
	MaxScanSteps      int  `toml:"max_scan_steps"`
	// PlainText skips tree-sitter and always scans raw text.
	PlainText bool `toml:"plain_text"`
}

// EditorConfig holds viewer settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	ThemeFile       string `toml:"theme_file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Brackets: BracketConfig{
			HighlightMatching: true,
			HighlightMismatch: true,
			MaxScanSteps:      DefaultMaxScanSteps,
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/brackets/config.toml, or "" when
// the user config directory is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes a TOML file over cfg. Keys missing from the file keep
// the values already in cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) (toml.MetaData, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return toml.MetaData{}, nil
	}
	if err != nil {
		return toml.MetaData{}, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return metadata, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	return metadata, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Brackets.MaxScanSteps <= 0 {
		c.Brackets.MaxScanSteps = defaults.Brackets.MaxScanSteps
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok || c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds the configuration: defaults, then the TOML file, then flag
// overrides, then validation. An empty configFilePath means the default
// location. The logger is not set up yet, so unknown keys are returned as
// warnings for the caller to log.
func Load(configFilePath string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()
	var warnings []string

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}
	if effectivePath != "" {
		metadata, err := loadFromFile(effectivePath, cfg)
		if err != nil {
			return nil, nil, err
		}
		for _, key := range metadata.Undecoded() {
			warnings = append(warnings, fmt.Sprintf("config file '%s': unrecognized key %q", effectivePath, key.String()))
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	if _, ok := logger.ParseLevel(cfg.Logger.LogLevel); !ok {
		warnings = append(warnings, fmt.Sprintf("unknown log level %q, using %q", cfg.Logger.LogLevel, "info"))
	}
	cfg.validate()
	return cfg, warnings, nil
}
