package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPath is read when CONFIG_PATH is unset and the file exists.
const defaultPath = "./config.yaml"

// Load reads the file named by CONFIG_PATH. See LoadPath.
func Load() (*Config, error) {
	return LoadPath(os.Getenv("CONFIG_PATH"))
}

// LoadPath reads YAML from path, overlays environment variables and applies
// env-default tags, then validates. An empty path falls back to defaultPath
// and, when that is absent too, to environment and defaults alone. A
// non-empty path that does not exist is an error.
func LoadPath(path string) (*Config, error) {
	var cfg Config

	file := path
	if file == "" {
		file = defaultPath
	}

	_, statErr := os.Stat(file)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(file, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	case path == "" && errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: file %s: %w", file, statErr)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
