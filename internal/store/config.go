package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// Extension is the file extension of document files.
	Extension = ".todo"

	configFileName = "config"
	configFileType = "toml"
	envPrefix      = "TODO"
)

// Config holds user preferences. Values come from (highest first) flags bound
// by the CLI, TODO_* environment variables, config.toml, and defaults.
type Config struct {
	// ListsDir is the user-level directory scanned for documents.
	ListsDir string `mapstructure:"lists_dir"`
	// Glyphs selects the glyph set: unicode|ascii.
	Glyphs string `mapstructure:"glyphs"`
	// Expand selects which subtrees are shown: path|all.
	Expand string `mapstructure:"expand"`
	LogDir string `mapstructure:"log_dir"`
	// RecentLimit caps the recently opened documents offered by the picker.
	RecentLimit int `mapstructure:"recent_limit"`
}

func ConfigDir() (string, error) {
	// Keeps tests and sandboxes away from ~/.todo.
	if v := strings.TrimSpace(os.Getenv("TODO_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".todo"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName+"."+configFileType), nil
}

// RecentsPath is the SQLite index of recently opened documents.
func RecentsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "recent.sqlite"), nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("lists_dir", "~/_todo_lists")
	v.SetDefault("glyphs", "unicode")
	v.SetDefault("expand", "path")
	v.SetDefault("log_dir", filepath.Join(dir, "logs"))
	v.SetDefault("recent_limit", 10)
}

// LoadConfig reads configuration into v and decodes it. When explicit is set
// that file must exist; otherwise a missing config.toml just means defaults.
func LoadConfig(v *viper.Viper, explicit string) (Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return Config{}, err
	}
	setDefaults(v, dir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if explicit = strings.TrimSpace(explicit); explicit != "" {
		v.SetConfigFile(ExpandHome(explicit))
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.ListsDir = ExpandHome(cfg.ListsDir)
	cfg.LogDir = ExpandHome(cfg.LogDir)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Glyphs)) {
	case "unicode", "ascii":
	default:
		return fmt.Errorf("invalid glyphs %q (expected unicode|ascii)", c.Glyphs)
	}
	switch strings.ToLower(strings.TrimSpace(c.Expand)) {
	case "path", "all":
	default:
		return fmt.Errorf("invalid expand %q (expected path|all)", c.Expand)
	}
	if c.RecentLimit < 0 {
		return fmt.Errorf("invalid recent_limit %d", c.RecentLimit)
	}
	return nil
}

// EnsureListsDir creates the lists directory if it is missing.
func (c Config) EnsureListsDir() error {
	if strings.TrimSpace(c.ListsDir) == "" {
		return nil
	}
	return os.MkdirAll(c.ListsDir, 0o755)
}
