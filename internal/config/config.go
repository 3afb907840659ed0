package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"baccarat/internal/util"
)

// Config provides configuration for the baccarat table
type Config struct {
	loaded bool

	// StartingCredit is the credit balance the player sits down with
	StartingCredit int `yaml:"startingCredit" envconfig:"starting_credit"`

	// PaceDelay is the pause between dealing steps, zero disables it
	PaceDelay time.Duration `yaml:"paceDelay" envconfig:"pace_delay"`

	// Seed makes the shuffle reproducible, zero uses crypto/rand
	Seed int64 `yaml:"seed" envconfig:"seed"`

	Log struct {
		Level string `yaml:"level" envconfig:"level"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	cfg := Config{
		StartingCredit: 1000,
		PaceDelay:      time.Second,
	}
	cfg.Log.Level = "info"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are read from the defaults, then the yaml file, then the environment.
// A .env file is loaded into the environment first, without overriding variables that are already set.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BACCARAT_CONFIG_FILE", "config.yaml")
	if err := decodeFile(configFile, &cfg); err != nil {
		return err
	}

	envFile := util.Getenv("BACCARAT_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("baccarat", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// decodeFile decodes the yaml file into cfg
// A missing or empty file is not an error.
func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && err != io.EOF {
		return err
	}

	return nil
}
