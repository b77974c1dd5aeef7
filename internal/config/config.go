package config

import (
	"fmt"

	"github.com/dooshek/keyhook/internal/fileops"
	"gopkg.in/yaml.v3"
)

const configFilename = "keyhook.yaml"

// Config holds the daemon configuration loaded from
// ~/.config/keyhook/keyhook.yaml.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	LogFilename string `yaml:"log_filename"`

	// Device is an explicit input device path (e.g. /dev/input/event3).
	// When empty the hook picks the first keyboard device it finds.
	Device string `yaml:"device"`

	// Labels overrides individual key names, keyed by the fixed property
	// identifier of each key (e.g. "key.enter: Return").
	Labels map[string]string `yaml:"labels"`

	// WSListen enables the websocket event tap on the given address
	// (e.g. "localhost:7397"). Empty disables the tap.
	WSListen string `yaml:"ws_listen"`

	// DBus enables the session bus control surface.
	DBus bool `yaml:"dbus"`
}

// Parse decodes a YAML config document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// Load reads the config file from the keyhook config directory. A missing
// file is not an error; it returns (nil, nil) so the caller can fall back to
// defaults.
func Load() (*Config, error) {
	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file operations: %w", err)
	}

	if err := fileOps.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	data, err := fileOps.LoadConfig(configFilename)
	if err != nil {
		if err == fileops.ErrConfigNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Save writes the config file to the keyhook config directory.
func Save(cfg *Config) error {
	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return fmt.Errorf("failed to initialize file operations: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fileOps.SaveConfig(configFilename, data); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
