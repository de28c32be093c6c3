package sim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds the simulator's runtime options.
type Config struct {
	Prompt struct {
		Title     string `mapstructure:"title"`
		File      string `mapstructure:"file"`
		ShowIndex bool   `mapstructure:"show_index"`
		Rows      int    `mapstructure:"rows"`
	} `mapstructure:"prompt"`
	UI struct {
		Accent   string `mapstructure:"accent"`
		RowWidth int    `mapstructure:"row_width"`
	} `mapstructure:"ui"`
	Trace bool `mapstructure:"trace"`
}

type configReloadMsg struct {
	cfg Config
}

var configChangeChan = make(chan Config, 1)

// LoadConfig reads the simulator config: defaults, then the YAML file
// (explicit path, or config.yaml under the XDG config dir), then
// PROMPTPAGER_* environment variables. A missing file is not an error.
// It also installs a watcher that pushes live reloads to the TUI.
func LoadConfig(path string) (Config, error) {
	viper.SetDefault("prompt.title", "Transfer")
	viper.SetDefault("prompt.file", "")
	viper.SetDefault("prompt.show_index", true)
	viper.SetDefault("prompt.rows", 1)
	viper.SetDefault("ui.accent", "#ff8c00")
	viper.SetDefault("ui.row_width", 16)
	viper.SetDefault("trace", false)

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			if homeDir, err := os.UserHomeDir(); err == nil {
				configHome = filepath.Join(homeDir, ".config")
			}
		}
		if configHome != "" {
			viper.AddConfigPath(filepath.Join(configHome, "promptpager"))
		}
	}

	viper.SetEnvPrefix("PROMPTPAGER")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && path != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	normalizeConfig(&cfg)

	viper.OnConfigChange(func(fsnotify.Event) {
		var next Config
		if err := viper.Unmarshal(&next); err != nil {
			return
		}
		normalizeConfig(&next)
		select {
		case configChangeChan <- next:
		default:
		}
	})
	viper.WatchConfig()

	return cfg, nil
}

func normalizeConfig(cfg *Config) {
	if cfg.Prompt.Rows != 3 {
		cfg.Prompt.Rows = 1
	}
	if cfg.UI.RowWidth < 8 {
		cfg.UI.RowWidth = 16
	}
}
