// Package config loads analyzer settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultBaud = 4800

// Config is the root structure of the analyzer configuration file.
type Config struct {
	Only        string       `yaml:"only"`         // comma-separated message ids to decode
	MetricsAddr string       `yaml:"metrics_addr"` // e.g. ":9100"; empty disables the endpoint
	Serial      SerialConfig `yaml:"serial"`
}

// SerialConfig describes the serial port an NMEA talker is attached to.
type SerialConfig struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{Serial: SerialConfig{Baud: defaultBaud}}
}

// Load reads and validates a YAML config file. Missing keys keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Serial.Baud <= 0 {
		return cfg, fmt.Errorf("serial baud must be positive, got %d", cfg.Serial.Baud)
	}
	return cfg, nil
}
