// Package config resolves the demo's optional adapt.yaml, .env file and
// ADAPT_* environment overrides into one validated configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/adapt/pkg/theme"
)

// FileName is the config file looked up in the project root.
const FileName = "adapt.yaml"

// EnvPrefix prefixes the environment overrides, e.g. ADAPT_THEME.
const EnvPrefix = "ADAPT_"

// Config represents the optional adapt.yaml configuration.
type Config struct {
	App   AppConfig   `yaml:"app"`
	Theme ThemeConfig `yaml:"theme"`
	Log   LogConfig   `yaml:"log"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty" validate:"omitempty,max=64"`
}

// ThemeConfig selects the starting theme.
type ThemeConfig struct {
	Initial string `yaml:"initial,omitempty" validate:"omitempty,oneof=light dark"`
}

// LogConfig configures the zerolog logger.
type LogConfig struct {
	Level  string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=console json"`
	// File receives log output; empty means stderr.
	File string `yaml:"file,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Theme      theme.Brightness
	LogLevel   zerolog.Level
	LogFormat  string
	LogFile    string
}

// LoadOptional reads adapt.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads adapt.yaml and dir/.env (both optional), applies the
// environment overrides and resolves defaults. Process environment wins
// over .env, which wins over adapt.yaml.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	dotenv, err := readDotenv(filepath.Join(dir, ".env"))
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	})

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	brightness := theme.BrightnessLight
	if cfg.Theme.Initial != "" {
		brightness, err = theme.ParseBrightness(cfg.Theme.Initial)
		if err != nil {
			return nil, err
		}
	}

	level := zerolog.InfoLevel
	if cfg.Log.Level != "" {
		level, err = zerolog.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("log.level: %w", err)
		}
	}

	format := cfg.Log.Format
	if format == "" {
		format = "console"
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Theme:      brightness,
		LogLevel:   level,
		LogFormat:  format,
		LogFile:    cfg.Log.File,
	}, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	override := func(dst *string, name string) {
		if v := strings.TrimSpace(getenv(EnvPrefix + name)); v != "" {
			*dst = v
		}
	}
	override(&c.App.Name, "APP_NAME")
	override(&c.Theme.Initial, "THEME")
	override(&c.Log.Level, "LOG_LEVEL")
	override(&c.Log.Format, "LOG_FORMAT")
	override(&c.Log.File, "LOG_FILE")
	c.Theme.Initial = strings.ToLower(c.Theme.Initial)
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
}

func readDotenv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return env, nil
}

// FindProjectRoot walks up from dir to the nearest directory holding
// adapt.yaml or go.mod. It returns dir itself when neither is found.
func FindProjectRoot(dir string) string {
	for current := dir; ; {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(current, marker)); err == nil {
				return current
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			return dir
		}
		current = parent
	}
}

// modulePath returns the module path of dir/go.mod, or "" without one.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "adapt_app"
	}
	return base
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

// Validate checks cfg against its validate tags. Errors name fields by
// their yaml path, e.g. "theme.initial".
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("invalid %s: %w", FileName, err)
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, yamlPath(fe)+": "+describe(fe))
	}
	return fmt.Errorf("invalid %s: %s", FileName, strings.Join(messages, "; "))
}

// yamlPath drops the root struct name from the validator namespace.
func yamlPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of [%s] (got %q)", fe.Param(), fe.Value())
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "failed " + fe.Tag()
	}
}
