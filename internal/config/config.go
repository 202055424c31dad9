package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ThemeConfig selects a theme preset and optional color overrides.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// Config holds the application configuration.
type Config struct {
	Storage       string      `mapstructure:"storage"`
	DataDir       string      `mapstructure:"data_dir"`
	Locale        string      `mapstructure:"locale"`
	YearSelect    string      `mapstructure:"year_select"`
	StartEmpty    bool        `mapstructure:"start_empty"`
	RecordHistory bool        `mapstructure:"record_history"`
	HistoryLimit  int         `mapstructure:"history_limit"`
	Theme         ThemeConfig `mapstructure:"theme"`
}

// DefaultDataDir returns the default data directory (~/.datepick/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".datepick")
	}
	return filepath.Join(home, ".datepick")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("storage", "markdown")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("locale", "en")
	v.SetDefault("year_select", "months")
	v.SetDefault("start_empty", false)
	v.SetDefault("record_history", true)
	v.SetDefault("history_limit", 20)
	v.SetDefault("theme.preset", "default-dark")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "datepick"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// DATEPICK_STORAGE, DATEPICK_LOCALE, ...
	v.SetEnvPrefix("DATEPICK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicit --config must exist and parse
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
