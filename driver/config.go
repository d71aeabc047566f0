package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridwalk/builder"
)

const (
	// MaxAutostep is the highest accepted autostep rate, in steps per second.
	MaxAutostep = 240

	defaultListen = ":8080"
)

// Config holds the process configuration shared by the window and the server.
//   - Seed drives the Random layout; 0 picks a time-based seed.
//   - Listen is the serve address.
//   - Autostep is the number of automatic steps per second; 0 means manual.
type Config struct {
	Algorithm string `yaml:"algorithm"`
	Layout    string `yaml:"layout"`
	Seed      int64  `yaml:"seed"`
	LogLevel  string `yaml:"log_level"`
	Listen    string `yaml:"listen"`
	Autostep  int    `yaml:"autostep"`
}

// DefaultConfig starts Dijkstra on the first predefined layout.
func DefaultConfig() Config {
	return Config{
		Algorithm: Dijkstra.String(),
		Layout:    builder.Predefined1.String(),
		LogLevel:  logrus.InfoLevel.String(),
		Listen:    defaultListen,
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
// An empty path yields the defaults. A non-empty PORT environment variable
// overrides Listen with ":"+PORT.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("unable to read config file: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("unable to parse config file: %v: %w", err, ErrBadConfig)
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Listen = ":" + port
	}

	return cfg, cfg.Validate()
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if _, err := ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("algorithm %q: %w", c.Algorithm, ErrBadConfig)
	}
	if _, err := builder.ParseLayout(c.Layout); err != nil {
		return fmt.Errorf("layout %q: %w", c.Layout, ErrBadConfig)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrBadConfig)
	}
	if c.Listen == "" {
		return fmt.Errorf("listen is empty: %w", ErrBadConfig)
	}
	if c.Autostep < 0 || c.Autostep > MaxAutostep {
		return fmt.Errorf("autostep %d out of [0, %d]: %w", c.Autostep, MaxAutostep, ErrBadConfig)
	}

	return nil
}
