package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Network  NetworkConfig  `toml:"network"`
	Data     DataConfig     `toml:"data"`
	Logging  LoggingConfig  `toml:"logging"`
}

type ServerConfig struct {
	Name string `toml:"name"`
	ID   int    `toml:"id"`
}

type DatabaseConfig struct {
	// Path of the SQLite store file, created on first open.
	Path string `toml:"path"`
}

type NetworkConfig struct {
	BindAddress string `toml:"bind_address"`
	WebAddress  string `toml:"web_address"`
}

type DataConfig struct {
	Professions string `toml:"professions"`
	NPCs        string `toml:"npcs"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Oldentide",
			ID:   1,
		},
		Database: DatabaseConfig{
			Path: "db/Oldentide.db",
		},
		Network: NetworkConfig{
			BindAddress: "0.0.0.0:1337",
			WebAddress:  "127.0.0.1:8080",
		},
		Data: DataConfig{
			Professions: "data/professions.yaml",
			NPCs:        "data/npcs.yaml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
