// Package config provides configuration types and defaults for registrar.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"

	"github.com/zjrosen/registrar/internal/domain/registry"
	"github.com/zjrosen/registrar/internal/log"
)

// DefaultConfigPath is where config:init writes when no path is given.
const DefaultConfigPath = ".registrar/config.yaml"

// Config holds all configuration options for registrar.
type Config struct {
	Debug        bool               `mapstructure:"debug"`
	LogFile      string             `mapstructure:"log_file"`
	LogLevel     string             `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Output       string             `mapstructure:"output" validate:"oneof=text json"`
	Input        string             `mapstructure:"input"` // read commands from this file instead of stdin
	Registration RegistrationConfig `mapstructure:"registration"`
	UI           UIConfig           `mapstructure:"ui"`
}

// RegistrationConfig holds student registration rules.
type RegistrationConfig struct {
	// SelectionPolicy decides how invalid or repeated subject codes are handled.
	// Valid values: "permissive" (drop them), "strict" (reject the student)
	SelectionPolicy string `mapstructure:"selection_policy" validate:"oneof=permissive strict"`

	// MaxAttempts bounds random registration number draws before the
	// allocator scans for a free number. 0 scans immediately.
	MaxAttempts int `mapstructure:"max_attempts" validate:"gte=0,lte=10000"`

	// Seed makes registration numbers reproducible. 0 seeds from the clock.
	Seed uint64 `mapstructure:"seed"`
}

// UIConfig holds terminal interaction options.
type UIConfig struct {
	ClearScreen bool   `mapstructure:"clear_screen" yaml:"clear_screen"` // clear the screen between actions
	Pause       bool   `mapstructure:"pause" yaml:"pause"`               // wait for Enter after each action
	Color       string `mapstructure:"color" yaml:"color" validate:"oneof=auto always never"`
}

// Options converts the registration settings into registry options.
func (r RegistrationConfig) Options() ([]registry.Option, error) {
	policy, err := registry.ParsePolicy(r.SelectionPolicy)
	if err != nil {
		return nil, err
	}
	return []registry.Option{
		registry.WithPolicy(policy),
		registry.WithMaxAttempts(r.MaxAttempts),
		registry.WithNumberSource(registry.NewNumberSource(r.Seed)),
	}, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report config keys rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks configuration values.
// The error names the offending config key, e.g. "ui.color".
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "oneof":
		options := strings.Fields(fe.Param())
		quoted := make([]string, len(options))
		for i, o := range options {
			quoted[i] = fmt.Sprintf("%q", o)
		}
		return fmt.Sprintf("%s must be one of %s, got %q", key, strings.Join(quoted, ", "), fmt.Sprint(fe.Value()))
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", key, fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", key, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q validation", key, fe.Tag())
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Debug:    false,
		LogFile:  "debug.log",
		LogLevel: "debug",
		Output:   "text",
		Registration: RegistrationConfig{
			SelectionPolicy: "permissive",
			MaxAttempts:     registry.DefaultMaxAttempts,
			Seed:            0,
		},
		UI: UIConfig{
			ClearScreen: true,
			Pause:       true,
			Color:       "auto",
		},
	}
}

// UserConfigDir returns ~/.config/registrar or empty string if the home
// directory is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "registrar")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Registrar Configuration

# Debug logging (also enabled by --debug or REGISTRAR_DEBUG=1)
debug: false
log_file: debug.log   # overridden by REGISTRAR_LOG
log_level: debug      # debug, info, warn or error

# Output format: "text" for people, "json" for scripts (one object per line)
output: text

# Read menu input from a file instead of stdin
# input: session.txt

# Student registration rules
registration:
  # What to do with invalid or repeated subject codes:
  #   permissive - drop them and enrol the student in the rest (default)
  #   strict     - reject the whole registration
  selection_policy: permissive

  # Random draws before scanning for a free registration number
  max_attempts: 64

  # Fixed seed for reproducible registration numbers (0 = random)
  seed: 0

# Terminal settings (clear_screen and pause are ignored when stdin is not a terminal)
ui:
  clear_screen: true   # Clear the screen between actions
  pause: true          # Wait for Enter after each action
  color: auto          # auto, always or never
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
// An existing file is only replaced when force is set.
func WriteDefaultConfig(fs afero.Fs, configPath string, force bool) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath, "force", force)

	if !force {
		exists, err := afero.Exists(fs, configPath)
		if err != nil {
			return fmt.Errorf("checking config file: %w", err)
		}
		if exists {
			return fmt.Errorf("config file %s already exists: %w", configPath, os.ErrExist)
		}
	}

	dir := filepath.Dir(configPath)
	if err := fs.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := afero.WriteFile(fs, configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
