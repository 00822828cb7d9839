package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where cfkit looks for its configuration file.
const DefaultPath = ".cfkit.yaml"

// Config is the toolkit configuration, normally read from .cfkit.yaml.
type Config struct {
	Handle      string          `yaml:"handle"`
	Key         string          `yaml:"key"`
	Secret      string          `yaml:"secret"`
	DataDir     string          `yaml:"data_dir"`
	ContestsDir string          `yaml:"contests_dir"`
	Reminders   RemindersConfig `yaml:"reminders"`
	Server      ServerConfig    `yaml:"server"`
}

type RemindersConfig struct {
	// Times are minutes before the contest start to notify at.
	Times      []int    `yaml:"times"`
	Filter     []string `yaml:"filter"`
	IncludeGym bool     `yaml:"include_gym"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:     filepath.Join(home, ".cfkit", "data"),
		ContestsDir: "contests",
		Reminders: RemindersConfig{
			Times:  []int{1440, 60, 15},
			Filter: []string{"div2", "div3"},
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads the configuration file, falling back to defaults when the file
// does not exist, then applies environment overrides (CF_HANDLE, CF_API_KEY,
// CF_API_SECRET).
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if v := os.Getenv("CF_HANDLE"); v != "" {
		cfg.Handle = v
	}
	if v := os.Getenv("CF_API_KEY"); v != "" {
		cfg.Key = v
	}
	if v := os.Getenv("CF_API_SECRET"); v != "" {
		cfg.Secret = v
	}
	return cfg, nil
}

// Write saves the configuration as YAML.
func Write(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
