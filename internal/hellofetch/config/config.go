package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	API    APIConfig    `toml:"api"`
	Server ServerConfig `toml:"server"`
	UI     UIConfig     `toml:"ui"`
}

type APIConfig struct {
	BaseURL  string   `toml:"base_url"`
	Endpoint string   `toml:"endpoint"`
	Timeout  Duration `toml:"timeout"`
}

type ServerConfig struct {
	Addr    string `toml:"addr"`
	Fixture string `toml:"fixture"`
}

type UIConfig struct {
	Title     string `toml:"title"`
	AltScreen bool   `toml:"alt_screen"`
	LogFile   string `toml:"log_file"`
}

// Duration decodes TOML strings such as "5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

const DefaultConfigToml = `# hellofetch configuration

[api]
base_url = "http://127.0.0.1:8097"
endpoint = "/api/data"
timeout = "30s"

[server]
addr = "127.0.0.1:8097"
# fixture = "~/.config/hellofetch/fixture.yaml"

[ui]
title = "Hello World"
alt_screen = false
# log_file = "~/.cache/hellofetch/tui.log"
`

func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:  "http://127.0.0.1:8097",
			Endpoint: "/api/data",
			Timeout:  Duration{30 * time.Second},
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8097",
		},
		UI: UIConfig{
			Title: "Hello World",
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := Default()

	// Try default paths if not specified
	if path == "" {
		candidates := []string{
			expandHome("~/.config/hellofetch/config.toml"),
			"./config.toml",
		}
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Server.Fixture = expandHome(cfg.Server.Fixture)
	cfg.UI.LogFile = expandHome(cfg.UI.LogFile)
	if cfg.UI.Title == "" {
		cfg.UI.Title = "Hello World"
	}

	return cfg, nil
}

func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
