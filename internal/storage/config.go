package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const appName = "navtrail"

// Config holds navtrail user configuration.
type Config struct {
	Theme         string `mapstructure:"theme"`
	ShowPathPanel bool   `mapstructure:"show_path_panel"`
	LogLevel      string `mapstructure:"log_level"`
	LogDir        string `mapstructure:"log_dir"` // empty means {DataDir}/logs
	CacheSize     int    `mapstructure:"cache_size"`
	path          string

	// file and env hold the values read from disk and the values in effect
	// after NAVTRAIL_* overrides, as loaded.
	file, env *Config
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:         "default",
		ShowPathPanel: true,
		LogLevel:      "info",
		CacheSize:     64,
	}
}

// LoadConfig loads configuration from path, or from the standard config
// directory when path is empty. A missing file is created with defaults.
// NAVTRAIL_* environment variables override the file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.json")
	}

	v := newViper(DefaultConfig())
	v.SetConfigFile(path)
	v.SetConfigType("json")

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	case errors.Is(statErr, os.ErrNotExist):
		// Save default config.
		def := DefaultConfig()
		def.path = path
		_ = def.Save()
	default:
		return nil, fmt.Errorf("reading config: %w", statErr)
	}

	var file Config
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	v.SetEnvPrefix(appName)
	v.AutomaticEnv()
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	env := cfg
	cfg.path = path
	cfg.file = &file
	cfg.env = &env
	return &cfg, nil
}

// Path returns the file the configuration is saved to.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	if c.path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		c.path = filepath.Join(dir, "config.json")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	out := c.persisted()
	v := newViper(out)
	v.SetConfigType("json")
	if err := v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if c.file != nil {
		c.file = &out
	}
	return nil
}

// persisted returns the values to write. A value that still equals its
// environment override is written as it was in the file, so overrides
// last only as long as the variable is set.
func (c *Config) persisted() Config {
	out := *c
	if c.file == nil || c.env == nil {
		return out
	}
	f, e := c.file, c.env
	if out.Theme == e.Theme {
		out.Theme = f.Theme
	}
	if out.ShowPathPanel == e.ShowPathPanel {
		out.ShowPathPanel = f.ShowPathPanel
	}
	if out.LogLevel == e.LogLevel {
		out.LogLevel = f.LogLevel
	}
	if out.LogDir == e.LogDir {
		out.LogDir = f.LogDir
	}
	if out.CacheSize == e.CacheSize {
		out.CacheSize = f.CacheSize
	}
	return out
}

func newViper(c Config) *viper.Viper {
	v := viper.New()
	v.SetDefault("theme", c.Theme)
	v.SetDefault("show_path_panel", c.ShowPathPanel)
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("log_dir", c.LogDir)
	v.SetDefault("cache_size", c.CacheSize)
	return v
}

// DataDir returns the data directory for persistent storage.
func DataDir() (string, error) {
	return appDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func configDir() (string, error) {
	return appDir("XDG_CONFIG_HOME", ".config")
}

func appDir(xdgVar, xdgFallback string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appName), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName), nil
		}
		return filepath.Join(home, "."+appName), nil
	default: // Linux, BSD, etc.
		if xdg := os.Getenv(xdgVar); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		return filepath.Join(home, xdgFallback, appName), nil
	}
}
