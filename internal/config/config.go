// Package config loads the TOML configuration shared by the robowire
// command-line tools: which device lives where, serial parameters, and
// per-exchange timeouts.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/fieldbotics/robowire/internal/serialio"
)

// SerialDevice configures one serial-attached robot.
type SerialDevice struct {
	Port    string               `toml:"port"`
	Timeout string               `toml:"timeout"` // duration string like "500ms"
	Serial  serialio.PortOptions `toml:"serial"`
}

// RoverDevice configures the HTTP-controlled robot.
type RoverDevice struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// Trace configures the optional exchange recorder.
type Trace struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config is the root of the TOML file.
type Config struct {
	Sweeper SerialDevice `toml:"sweeper"`
	Brick   SerialDevice `toml:"brick"`
	Rover   RoverDevice  `toml:"rover"`
	Trace   Trace        `toml:"trace"`
}

// Load reads and validates a config file. Fields omitted from the file
// keep their zero values; per-device defaults are applied by the
// accessors below, so partial configs are safe.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for name, dev := range map[string]SerialDevice{"sweeper": c.Sweeper, "brick": c.Brick} {
		if _, err := dev.Serial.Normalize(); err != nil {
			return fmt.Errorf("%s serial options: %w", name, err)
		}
		if _, err := dev.timeout(0); err != nil {
			return fmt.Errorf("%s timeout: %w", name, err)
		}
	}
	if _, err := c.Rover.timeout(0); err != nil {
		return fmt.Errorf("rover timeout: %w", err)
	}
	if c.Trace.Enabled && c.Trace.Path == "" {
		return fmt.Errorf("trace enabled without a path")
	}
	return nil
}

func parseTimeout(text string, fallback time.Duration) (time.Duration, error) {
	if text == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(text)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout %q must be positive", text)
	}
	return d, nil
}

func (d SerialDevice) timeout(fallback time.Duration) (time.Duration, error) {
	return parseTimeout(d.Timeout, fallback)
}

func (d RoverDevice) timeout(fallback time.Duration) (time.Duration, error) {
	return parseTimeout(d.Timeout, fallback)
}

// SerialTimeout returns the device's per-receive timeout, or fallback
// when unset. Call only after Load has validated the config.
func (d SerialDevice) SerialTimeout(fallback time.Duration) time.Duration {
	t, err := d.timeout(fallback)
	if err != nil {
		return fallback
	}
	return t
}

// QueryTimeout returns the rover's per-query timeout, or fallback when
// unset.
func (d RoverDevice) QueryTimeout(fallback time.Duration) time.Duration {
	t, err := d.timeout(fallback)
	if err != nil {
		return fallback
	}
	return t
}
