package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// ServerConfig configures the SSH server. Values come from an optional YAML
// file and are overridden by ARCADE_* environment variables.
type ServerConfig struct {
	Address     string        `yaml:"address" env:"ARCADE_ADDRESS" env-default:"0.0.0.0:2222"`
	HostKeyPath string        `yaml:"host-key-path" env:"ARCADE_HOST_KEY" env-default:".ssh/arcade_ed25519"`
	DBPath      string        `yaml:"db-path" env:"ARCADE_DB"`
	IdleTimeout time.Duration `yaml:"idle-timeout" env:"ARCADE_IDLE_TIMEOUT" env-default:"30m"`
	TickRate    int           `yaml:"tick-rate" env:"ARCADE_TICK_RATE" env-default:"60"`
	RedisAddr   string        `yaml:"redis-addr" env:"ARCADE_REDIS_ADDR"`
	LogLevel    string        `yaml:"log-level" env:"ARCADE_LOG_LEVEL" env-default:"info"`
}

// LoadServer reads the server config from path, or from the environment
// alone when path is empty.
func LoadServer(path string) (ServerConfig, error) {
	var cfg ServerConfig

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: unable to load server config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: unable to read server environment: %w", err)
	}

	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return cfg, nil
}

// ServerUsage returns the environment variable help text.
func ServerUsage() string {
	var cfg ServerConfig
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
