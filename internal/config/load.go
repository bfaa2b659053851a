package config

import (
	stderrors "errors"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/fentrack-go/internal/errors"
)

// Load builds a configuration from defaults, then the YAML file at path (if
// path is not empty), then the environment. Command-line flags are applied by
// the caller afterwards; call Validate once they have been.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto c. Keys absent from the file
// keep their current values; unknown keys are rejected.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()
	return c.Decode(f)
}

// Decode overlays YAML read from r onto c. An empty document is not an error.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !stderrors.Is(err, io.EOF) {
		return errors.Wrapf(errors.ErrInvalidConfig, "yaml: %v", err)
	}
	return nil
}

// ApplyEnv overlays FENTRACK_* environment variables onto c. Variables that
// are not set leave the current value alone.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "environment: %v", err)
	}
	return nil
}
