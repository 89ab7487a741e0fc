// Package config loads meshctl settings.
//
// Sources, lowest priority first:
//  1. Defaults (Default).
//  2. A config file chosen by extension: .yaml/.yml, .toml or .hcl.
//  3. Environment variables (MESH_*).
//
// The merged result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvLogLevel        = "MESH_LOG_LEVEL"
	EnvLogFormat       = "MESH_LOG_FORMAT"
	EnvFormat          = "MESH_FORMAT"
	EnvMetrics         = "MESH_METRICS"
	EnvMetricsTextfile = "MESH_METRICS_TEXTFILE"
	EnvMaxDepth        = "MESH_MAX_DEPTH"
)

var (
	// ErrUnsupportedFile indicates a config file with an unknown extension.
	ErrUnsupportedFile = errors.New("config: unsupported file extension")

	// ErrInvalid indicates a configuration that failed validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config holds every meshctl setting.
type Config struct {
	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level" toml:"log_level" hcl:"log_level,optional" validate:"oneof=debug info warn error"`

	// LogFormat selects zap's production (json) or development (console) setup.
	LogFormat string `yaml:"log_format" toml:"log_format" hcl:"log_format,optional" validate:"oneof=json console"`

	// Format is the default pack format written by meshctl.
	Format string `yaml:"format" toml:"format" hcl:"format,optional" validate:"oneof=text binary dot"`

	// MetricsEnabled turns on the Prometheus collector.
	MetricsEnabled bool `yaml:"metrics_enabled" toml:"metrics_enabled" hcl:"metrics_enabled,optional"`

	// MetricsTextfile receives the collected metrics in text exposition
	// format when the command finishes. Required with MetricsEnabled.
	MetricsTextfile string `yaml:"metrics_textfile" toml:"metrics_textfile" hcl:"metrics_textfile,optional" validate:"required_if=MetricsEnabled true"`

	// MaxDepth bounds path queries in edges; 0 means unbounded.
	MaxDepth int `yaml:"max_depth" toml:"max_depth" hcl:"max_depth,optional" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
		Format:    "text",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load merges defaults, the file at path (skipped when path is empty) and
// the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, describe(err))
	}

	return nil
}

func decodeFile(path string, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".hcl":
		if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok {
		cfg.Format = v
	}
	if v, ok := os.LookupEnv(EnvMetrics); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvMetrics, v, err)
		}
		cfg.MetricsEnabled = b
	}
	if v, ok := os.LookupEnv(EnvMetricsTextfile); ok {
		cfg.MetricsTextfile = v
	}
	if v, ok := os.LookupEnv(EnvMaxDepth); ok {
		d, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvMaxDepth, v, err)
		}
		cfg.MaxDepth = d
	}

	return nil
}

// describe flattens validator errors into "field: rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s must satisfy %s", strings.ToLower(fe.Field()), rule))
	}

	return strings.Join(parts, "; ")
}
