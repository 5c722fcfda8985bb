// Package config loads the application configuration once at the process
// boundary. Core packages never read configuration implicitly; they receive
// explicit values through their constructors.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"ratersync/internal/compliance"
)

// Config is the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ExportConfig drives the submission export generator.
type ExportConfig struct {
	// BuilderHomeIDTemplate contains {FieldName} placeholders drawn from the
	// schema's template-field subset, e.g. "{Subdivision1}_Lot{Lot1}".
	BuilderHomeIDTemplate string `yaml:"builder_home_id_template" envconfig:"BUILDER_HOME_ID_TEMPLATE" validate:"required"`
	TargetVersion         string `yaml:"target_energy_star_version" envconfig:"TARGET_VERSION" validate:"required"`
	DefaultOrientation    string `yaml:"default_orientation" envconfig:"DEFAULT_ORIENTATION" validate:"required,oneof=N NE E SE S SW W NW"`
}

// Default returns the built-in configuration, used when no file or
// environment overrides are present.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/ratersync.log",
		},
		Export: ExportConfig{
			BuilderHomeIDTemplate: "{Subdivision1}_Lot{Lot1}",
			TargetVersion:         compliance.DefaultVersion,
			DefaultOrientation:    "N",
		},
	}
}

// Load builds the effective configuration: defaults, overlaid by the YAML
// file at path when it exists, overlaid by RATERSYNC_* environment
// variables. The result is validated before it is returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No file is fine; defaults plus env apply.
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process("RATERSYNC", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks structural constraints plus the cross-package ones the
// struct tags cannot express.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if _, err := compliance.GetStandard(c.Export.TargetVersion); err != nil {
		return fmt.Errorf("export.target_energy_star_version: %w", err)
	}
	if strings.TrimSpace(c.Export.BuilderHomeIDTemplate) == "" {
		return fmt.Errorf("export.builder_home_id_template must not be blank")
	}
	return nil
}
