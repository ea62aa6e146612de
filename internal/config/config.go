package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "tablekit/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Sample  SampleConfig  `yaml:"sample" envconfig:"SAMPLE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir   string `yaml:"data_dir" envconfig:"DATA_DIR"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
}

// SampleConfig contains defaults for synthetic dataset generation
type SampleConfig struct {
	Rows int   `yaml:"rows" envconfig:"ROWS"`
	Seed int64 `yaml:"seed" envconfig:"SEED"`
}

// Load loads configuration starting from the built-in defaults, overridden
// by an optional YAML file, overridden in turn by environment variables
// (prefix TABLEKIT).
func Load(configFile string) (*Config, error) {
	cfg := *Default()

	if configFile == "" {
		configFile = defaultConfigFilePath()
	}
	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, apperrors.NewConfigError("failed to read config file", err).
				WithContext("path", configFile)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, apperrors.NewConfigError("failed to parse config file", err).
				WithContext("path", configFile)
		}
	}

	if err := envconfig.Process("TABLEKIT", &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration with all defaults applied and no file
// or environment input.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/tablekit.log",
		},
		Paths: PathsConfig{
			DataDir:   "data",
			OutputDir: "data/out",
		},
		Sample: SampleConfig{
			Rows: 100,
			Seed: 42,
		},
	}
}

// EnsureDirectories creates the configured data directories if missing.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.OutputDir, filepath.Dir(c.Logging.FilePath)} {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewStorageError("failed to create directory", err).
				WithContext("path", dir)
		}
	}
	return nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.NewConfigError(fmt.Sprintf("invalid log level: %s", c.Logging.Level), nil)
	}
	switch strings.ToLower(c.Logging.Output) {
	case "console", "file", "both":
	default:
		return apperrors.NewConfigError(fmt.Sprintf("invalid log output: %s", c.Logging.Output), nil)
	}
	if c.Sample.Rows < 0 {
		return apperrors.NewConfigError("sample rows must not be negative", nil)
	}
	return nil
}

func defaultConfigFilePath() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), "config.yaml")
	}
	return "config.yaml"
}
