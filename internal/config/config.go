// Package config provides configuration management for skillpack using Viper.
//
// The config file lives at <XDG config home>/skillpack/config.yaml and every
// key can be overridden through SKILLPACK_* environment variables:
//
//	source_dir: skills     # where candidate skills are read from
//	local: false           # default to the project-local installation root
//	assume_yes: false      # overwrite without prompting
package config

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/skillpack/skillpack/internal/paths"
)

// DefaultSourceDir is the source root used when none is configured.
const DefaultSourceDir = "skills"

// Config is the top-level configuration structure.
type Config struct {
	// SourceDir is the directory scanned for candidate skills,
	// relative to the working directory unless absolute.
	SourceDir string `mapstructure:"source_dir" yaml:"source_dir"`

	// Local makes the project-local root the default destination.
	Local bool `mapstructure:"local" yaml:"local"`

	// AssumeYes answers overwrite prompts with yes. Intended for
	// automation where no terminal is attached.
	AssumeYes bool `mapstructure:"assume_yes" yaml:"assume_yes"`
}

// ErrInvalidSourceDir indicates the configured source directory is malformed.
var ErrInvalidSourceDir = errors.New("invalid source_dir")

// Init initializes Viper with defaults and environment support.
// Call once at application startup before Load.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("SKILLPACK")
	viper.AutomaticEnv()

	viper.SetDefault("source_dir", DefaultSourceDir)
	viper.SetDefault("local", false)
	viper.SetDefault("assume_yes", false)
}

// Load reads the configuration. If path is empty the default search paths
// are used and a missing file falls back to defaults; an explicit path that
// does not exist is an error.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Implicit load without a config file: defaults apply.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{SourceDir: DefaultSourceDir}
}

// Validate checks a Config for validity.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if strings.ContainsRune(cfg.SourceDir, '\x00') {
		return errors.Wrapf(ErrInvalidSourceDir, "%q", cfg.SourceDir)
	}
	if cfg.SourceDir != "" {
		cleaned := filepath.Clean(cfg.SourceDir)
		if cleaned == "" {
			return errors.Wrapf(ErrInvalidSourceDir, "%q", cfg.SourceDir)
		}
	}
	return nil
}
