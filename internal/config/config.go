package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	ArrangeConfig struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Format string `yaml:"format"`
		Stats  bool   `yaml:"stats"`
	}

	Config struct {
		Version int           `yaml:"version"`
		Logging LoggingConfig `yaml:"logging"`
		Arrange ArrangeConfig `yaml:"arrange"`
	}
)

// Formats lists the report formats the arrange command can produce.
var Formats = []string{"text", "yaml"}

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// Only fields we defined are accepted, so no plain yaml.Unmarshal here.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the embedded defaults and validates the
// result. An empty path returns the defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}

	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if cfg, err = unmarshalConfig(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem in the configuration at once.
func (cfg *Config) Validate() (err error) {
	if cfg.Version != 1 {
		err = multierr.Append(err, fmt.Errorf("unsupported version %d", cfg.Version))
	}
	err = multierr.Append(err, cfg.Logging.Console.validate("console"))
	err = multierr.Append(err, cfg.Logging.File.validate("file"))
	if cfg.Logging.File.Level != LevelNone && len(cfg.Logging.File.Destination) == 0 {
		err = multierr.Append(err, fmt.Errorf("logging.file: destination is required when logging is enabled"))
	}
	if cfg.Arrange.Width < 0 {
		err = multierr.Append(err, fmt.Errorf("arrange.width: must not be negative, got %d", cfg.Arrange.Width))
	}
	if cfg.Arrange.Height < 0 {
		err = multierr.Append(err, fmt.Errorf("arrange.height: must not be negative, got %d", cfg.Arrange.Height))
	}
	if !slices.Contains(Formats, cfg.Arrange.Format) {
		err = multierr.Append(err, fmt.Errorf("arrange.format: unknown format %q", cfg.Arrange.Format))
	}
	return err
}

// Prepare returns the default configuration file content.
func Prepare() []byte {
	return bytes.Clone(defaultConfig)
}

// Dump serializes cfg as YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
