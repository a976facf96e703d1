package bookswap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/bookswap/bookswap/bookswap/database"
	"github.com/bookswap/bookswap/bookswap/ranking"
	"github.com/bookswap/bookswap/bookswap/web"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log       LogConfig          `toml:"log"`
	Server    web.ServerConfig   `toml:"server"`
	DB        database.DBConfig  `toml:"db"`
	Jobs      ranking.JobsConfig `toml:"jobs"`
	Migration MigrationConfig    `toml:"migration"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

// MigrationConfig configures the optional legacy data import.
type MigrationConfig struct {
	DataDir   string `toml:"data_dir"`
	MongoURI  string `toml:"mongo_uri"`
	MongoDB   string `toml:"mongo_db"`
	BatchSize int    `toml:"batch_size"`
}
