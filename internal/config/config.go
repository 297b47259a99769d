package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is loaded from an optional yaml file (-c flag or CONFIG_PATH)
// plus environment variables. Every field has a default, so the app runs
// with no configuration at all.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Poll   PollConfig   `yaml:"poll"`
	Window WindowConfig `yaml:"window"`
	Logger LoggerConfig `yaml:"logger"`
}

type APIConfig struct {
	BaseURL   string        `yaml:"base_url" env:"API_BASE_URL" env-default:"https://api.coinbase.com/v2/prices/"`
	Timeout   time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env:"API_USER_AGENT" env-default:"cryptoview/1.0"`
}

type PollConfig struct {
	Interval time.Duration `yaml:"interval" env:"POLL_INTERVAL" env-default:"30s"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" env:"WINDOW_WIDTH" env-default:"960"`
	Height int    `yaml:"height" env:"WINDOW_HEIGHT" env-default:"540"`
	Title  string `yaml:"title" env:"WINDOW_TITLE" env-default:"CryptoView"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`   // debug|info|warn|error
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text|json
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	configPath := fetchConfigPath()
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
