package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"syncscope/core"
)

// SerialConfig selects an optional serial console the rows are mirrored to
type SerialConfig struct {
	Device string `json:"device"`
	Baud   int    `json:"baud"`
}

// Config is the platform wiring of a decoder. Decoder timing itself is
// fixed at compile time.
type Config struct {
	Chip     string       `json:"chip"`
	SyncPin  uint32       `json:"sync_pin"`
	LevelPin uint32       `json:"level_pin"`
	Pull     string       `json:"pull"`
	Serial   SerialConfig `json:"serial"`

	// Demo replays a built-in pattern instead of reading GPIO
	Demo string `json:"demo"`

	// PaceUS is slept after each demo line so a terminal can keep up
	PaceUS int `json:"pace_us"`
}

// Load parses a JSON configuration and applies defaults
func Load(jsonData []byte) (*Config, error) {
	var cfg Config

	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&cfg)

	if _, err := cfg.Pins(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses a configuration file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data)
}

// Default returns the wiring of a Raspberry Pi with LEVEL on GPIO10 and
// SYNC on GPIO11
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in missing configuration values
func applyDefaults(cfg *Config) {
	if cfg.Chip == "" {
		cfg.Chip = "gpiochip0"
	}
	if cfg.SyncPin == 0 && cfg.LevelPin == 0 {
		cfg.SyncPin = 11
		cfg.LevelPin = 10
	}
	if cfg.Pull == "" {
		cfg.Pull = "none"
	}
	if cfg.Serial.Baud == 0 {
		cfg.Serial.Baud = 115200
	}
}

// PullMode converts the pull setting for the GPIO layer
func (c *Config) PullMode() (core.Pull, error) {
	switch strings.ToLower(c.Pull) {
	case "", "none":
		return core.PullNone, nil
	case "up":
		return core.PullUp, nil
	case "down":
		return core.PullDown, nil
	}
	return core.PullNone, fmt.Errorf("unknown pull %q", c.Pull)
}

// Pins returns the decoder input assignment. It is checked again after
// command-line overrides, so a bad combination from either source fails here.
func (c *Config) Pins() (core.Pins, error) {
	pull, err := c.PullMode()
	if err != nil {
		return core.Pins{}, err
	}
	if c.SyncPin == c.LevelPin {
		return core.Pins{}, fmt.Errorf("sync and level both on pin %d", c.SyncPin)
	}
	return core.Pins{
		Sync:  core.GPIOPin(c.SyncPin),
		Level: core.GPIOPin(c.LevelPin),
		Pull:  pull,
	}, nil
}
