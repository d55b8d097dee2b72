package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// flagKeys maps flag names to config keys. Flags not listed here (root,
// config) are not configuration values.
var flagKeys = map[string]string{
	"naming-convention": KeyNamingConvention,
	"ignore":            KeyIgnore,
	"log-level":         KeyLogLevel,
	"log-file":          KeyLogFile,
}

// listKeys hold comma-separated lists when read from the environment.
var listKeys = map[string]bool{
	KeyNamingConvention: true,
	KeyIgnore:           true,
}

// Load resolves the configuration for a project rooted at root.
//
// Precedence (highest to lowest): explicitly set flags > COMPDOC_ environment
// variables > project file > defaults. Each option is replaced whole by the
// highest layer that sets it; lists are never merged element by element.
// cfgFile names the project file explicitly; when empty, ProjectFileNames
// are looked up in root. flags may be nil.
func Load(root, cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	return load(root, cfgFile, true, flags)
}

// LoadWithoutFile is Load with the project file layer left out.
func LoadWithoutFile(root string, flags *pflag.FlagSet) (*Config, error) {
	return load(root, "", false, flags)
}

func load(root, cfgFile string, readFile bool, flags *pflag.FlagSet) (*Config, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultValues(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Project file
	var fileUsed string
	if readFile {
		fileUsed = findConfigFile(absRoot, cfgFile)
	}
	if fileUsed != "" {
		if err := loadProjectFile(k, fileUsed); err != nil {
			return nil, err
		}
	}

	// 3. Environment, COMPDOC_NAMING_CONVENTION -> naming_convention
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Root = absRoot
	cfg.FileUsed = fileUsed
	cfg.NamingConvention = trimList(cfg.NamingConvention)
	cfg.Ignore = trimList(cfg.Ignore)
	if cfg.LogFile != "" && !filepath.IsAbs(cfg.LogFile) {
		cfg.LogFile = filepath.Join(absRoot, cfg.LogFile)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile returns the project file to load, or "" when none exists.
// Priority: explicit path > ProjectFileNames in root.
func findConfigFile(root, explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range ProjectFileNames {
		candidate := filepath.Join(root, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// loadProjectFile merges a YAML (or JSON) project file into k. The legacy
// namingConvention key is renamed unless naming_convention is also present.
func loadProjectFile(k *koanf.Koanf, path string) error {
	fk := koanf.New(".")
	if err := fk.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if fk.Exists(legacyNamingKey) {
		if !fk.Exists(KeyNamingConvention) {
			if err := fk.Set(KeyNamingConvention, fk.Get(legacyNamingKey)); err != nil {
				return fmt.Errorf("error reading config file %s: %w", path, err)
			}
		}
		fk.Delete(legacyNamingKey)
	}
	if err := k.Merge(fk); err != nil {
		return fmt.Errorf("error merging config file %s: %w", path, err)
	}
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return trimList(strings.Split(s, ","))
}

func trimList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
