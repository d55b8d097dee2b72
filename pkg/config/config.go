// Package config resolves the settings of one compdoc invocation from
// defaults, a project file, the environment and command-line flags.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gnana997/compdoc/pkg/naming"
	"github.com/gnana997/compdoc/pkg/scanner"
	"github.com/gnana997/compdoc/pkg/util"
)

// Config keys.
const (
	KeyNamingConvention = "naming_convention"
	KeyIgnore           = "ignore"
	KeyLogLevel         = "log_level"
	KeyLogFile          = "log_file"
)

// legacyNamingKey is the camelCase spelling accepted in project files.
const legacyNamingKey = "namingConvention"

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "COMPDOC_"

// ProjectFileNames are looked up in the project root, in order, when no
// explicit config file is given.
var ProjectFileNames = []string{
	"compdoc.yaml",
	"compdoc.yml",
	filepath.Join(".compdoc", "config.yaml"),
	"config.json",
}

// Config holds the settings of one invocation.
type Config struct {
	NamingConvention []string `koanf:"naming_convention"`
	Ignore           []string `koanf:"ignore"`
	LogLevel         string   `koanf:"log_level"`
	// LogFile enables the JSONL tool-call log when non-empty. A relative
	// path is resolved against Root.
	LogFile string `koanf:"log_file"`

	// Resolved after loading.
	Root        string     `koanf:"-"`
	FileUsed    string     `koanf:"-"`
	Conventions naming.Set `koanf:"-"`
}

// Default returns the configuration used when nothing is set, rooted at root.
func Default(root string) *Config {
	cfg := &Config{
		NamingConvention: naming.DefaultSet().Strings(),
		Ignore:           append([]string(nil), scanner.DefaultIgnore...),
		LogLevel:         string(util.LevelWarn),
		Root:             root,
	}
	cfg.Conventions = naming.DefaultSet()
	return cfg
}

func defaultValues() map[string]any {
	return map[string]any{
		KeyNamingConvention: naming.DefaultSet().Strings(),
		KeyIgnore:           append([]string(nil), scanner.DefaultIgnore...),
		KeyLogLevel:         string(util.LevelWarn),
		KeyLogFile:          "",
	}
}

// ScanConfig returns the file discovery settings.
func (c *Config) ScanConfig() scanner.ScanConfig {
	return scanner.NewScanConfig(c.Ignore)
}

// LoggerConfig returns the diagnostic logger settings. Logs always go to
// stderr.
func (c *Config) LoggerConfig() util.LoggerConfig {
	lc := util.DefaultLoggerConfig()
	if level, err := util.ParseLogLevel(c.LogLevel); err == nil {
		lc.Level = level
	}
	return lc
}

// Logger builds the diagnostic logger.
func (c *Config) Logger() *slog.Logger {
	return util.NewLogger(c.LoggerConfig())
}

// validate parses conventions and checks every pattern and level.
func (c *Config) validate() error {
	set, err := naming.Parse(c.NamingConvention)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", KeyNamingConvention, err)
	}
	c.Conventions = set

	for _, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid %s pattern %q", KeyIgnore, pattern)
		}
	}

	if _, err := util.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	return nil
}
