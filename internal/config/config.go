package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Game     Game   `yaml:"game"`
	Primes   Primes `yaml:"primes"`
}

type Game struct {
	BoardSize      int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	Input          string `yaml:"input" env:"INPUT_CONVENTION" env-default:""`
	Color          string `yaml:"color" env:"COLOR" env-default:"auto"`
	TranscriptPath string `yaml:"transcript-path" env:"TRANSCRIPT_PATH" env-default:""`
}

type Primes struct {
	Limit      int    `yaml:"limit" env:"PRIMES_LIMIT" env-default:"100"`
	OutputPath string `yaml:"output-path" env:"PRIMES_OUTPUT" env-default:""`
}

// Load - reads the config file at path, falling back to environment variables and defaults
// when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

// MustLoad - like Load, but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
