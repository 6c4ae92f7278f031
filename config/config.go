// Package config loads the duopath YAML configuration, applies defaults and
// validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config aggregates application configuration values.
type Config struct {
	Solver    SolverConfig    `yaml:"solver"`
	Batch     BatchConfig     `yaml:"batch"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// SolverConfig selects the search strategy and oracle mode.
type SolverConfig struct {
	Strategy string `yaml:"strategy" validate:"required,oneof=unidirectional uni bidirectional bi bidirectional-early-exit early halfstep half-step half"`
	// Capped builds the oracle in capped mode (exact rows for the targets).
	Capped bool `yaml:"capped"`
	// Verify re-checks every returned path.
	Verify bool `yaml:"verify"`
}

// BatchConfig governs folder runs.
type BatchConfig struct {
	Folder      string        `yaml:"folder" validate:"required"`
	CSV         string        `yaml:"csv"`
	XLSX        string        `yaml:"xlsx"`
	YAML        string        `yaml:"yaml"`
	Workers     int           `yaml:"workers" validate:"gte=1,lte=256"`
	Timeout     time.Duration `yaml:"timeout" validate:"gte=0"`
	MetricsFile string        `yaml:"metrics_file"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format        string `yaml:"format" validate:"oneof=text json"`
	IncludeCaller bool   `yaml:"include_caller"`
}

// TelemetryConfig toggles OpenTelemetry tracing.
type TelemetryConfig struct {
	Tracing     bool   `yaml:"tracing"`
	ServiceName string `yaml:"service_name" validate:"required"`
}

const (
	defaultStrategy    = "bidirectional"
	defaultFolder      = "testcases"
	defaultCSV         = "results.csv"
	defaultWorkers     = 1
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultServiceName = "duopath"
)

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Solver: SolverConfig{Strategy: defaultStrategy},
		Batch: BatchConfig{
			Folder:  defaultFolder,
			CSV:     defaultCSV,
			Workers: defaultWorkers,
		},
		Logging:   LoggingConfig{Level: defaultLogLevel, Format: defaultLogFormat},
		Telemetry: TelemetryConfig{ServiceName: defaultServiceName},
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when path
// is empty), then validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read the config file: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks struct tags and returns ErrInvalidConfig on failure.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Marshal renders c as YAML, e.g. to seed a config file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
