package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	HTTPPort        string `toml:"http_port"`
	DefaultStrategy string `toml:"default_strategy"`
	SuggestLimit    int    `toml:"suggest_limit"`
	ShutdownSecs    int    `toml:"shutdown_timeout_seconds"`
}

func New() Config {
	return Config{
		HTTPPort:        ":8080",
		DefaultStrategy: "smart_balance",
		SuggestLimit:    3,
		ShutdownSecs:    10,
	}
}

// Load reads a TOML file over the defaults. An empty path just returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownSecs) * time.Second
}
