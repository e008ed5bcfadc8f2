package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. CORETEMP_PIPELINE_TIME_STEP.
const EnvPrefix = "CORETEMP"

// Pipeline modes.
const (
	ModeRows    = "rows"
	ModeReshape = "reshape"
)

// ─── Section configs ────────────────────────────────────────────────────

type PipelineConfig struct {
	Mode         string  `yaml:"mode" envconfig:"MODE" validate:"oneof=rows reshape"`
	Channels     int     `yaml:"channels" envconfig:"CHANNELS" validate:"gte=1"`
	TimeStep     float64 `yaml:"time_step" envconfig:"TIME_STEP" validate:"gt=0"`
	Distribution string  `yaml:"distribution" envconfig:"DISTRIBUTION" validate:"oneof=round_robin block broadcast"`
}

type OutputConfig struct {
	Dir          string `yaml:"dir" envconfig:"DIR"` // empty: next to the input file
	CSV          bool   `yaml:"csv" envconfig:"CSV"`
	XLSX         bool   `yaml:"xlsx" envconfig:"XLSX"`
	Workers      int    `yaml:"workers" envconfig:"WORKERS" validate:"gte=1"`
	BufferSizeKB int    `yaml:"buffer_size_kb" envconfig:"BUFFER_SIZE_KB" validate:"gte=0"`
}

type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	File  string `yaml:"file" envconfig:"FILE"`
}

// Config is the top-level structure for core-temp.yaml.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// DefaultConfig returns the configuration used when no file or env is given.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Mode:         ModeRows,
			Channels:     4,
			TimeStep:     30,
			Distribution: "round_robin",
		},
		Output: OutputConfig{
			Workers:      4,
			BufferSizeKB: 64,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ─── Loaders ────────────────────────────────────────────────────────────

// LoadConfig layers defaults, the YAML file at path (skipped when path is
// empty) and CORETEMP_* environment variables, then validates the result.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and reports the first offending field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s must satisfy %s=%s (got %v)",
			fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("invalid config: %w", err)
}
