package tracelog

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when the configuration document cannot be
// decoded.
var ErrInvalidConfig = errors.New("invalid tracelog config")

// Config carries the logger settings loaded from configuration.
type Config struct {
	Enabled bool `yaml:"enabled"`
}

// LoadConfig decodes a YAML configuration document.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config

	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	return cfg, nil
}

// NewFromConfig creates a Logger writing to out with the configured enabled
// flag.
func NewFromConfig(out io.Writer, cfg Config) *Logger {
	return New(out, cfg.Enabled)
}
