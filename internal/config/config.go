// Package config loads the ambient runtime settings: defaults, then an optional
// dotenv file, then the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the settings read from the environment.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" validate:"loglevel"`

	// RejectedLogLevel holds an unrecognized LOG_LEVEL value that was
	// replaced by the default. Empty when LOG_LEVEL was accepted.
	RejectedLogLevel string
}

var defaultConfig = Config{
	LogLevel: "info",
}

// InitOption customizes how New reads its sources.
type InitOption func(*initOptions)

type initOptions struct {
	envFiles []string
}

// WithEnvFile makes New read the given dotenv files instead of ./.env.
func WithEnvFile(fileNames ...string) InitOption {
	return func(options *initOptions) {
		options.envFiles = fileNames
	}
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	value := fieldLevel.Field().String()

	allowedLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}

	return allowedLogLevels[value]
}

func (c *Config) validate() error {
	validate := validator.New()

	err := validate.RegisterValidation("loglevel", validateLogLevel)
	if err != nil {
		return err
	}

	return validate.Struct(c)
}

// normalizeLogLevel accepts levels in any case and the "warning" spelling.
func normalizeLogLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return "warn"
	}

	return level
}

// fallbackOnInvalidLogLevel replaces a rejected log level with the default.
// Any other validation failure is returned unchanged.
func (c *Config) fallbackOnInvalidLogLevel(err error, defaults Config) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	for _, fieldErr := range validationErrors {
		if fieldErr.Field() != "LogLevel" {
			return err
		}
	}

	c.RejectedLogLevel = c.LogLevel
	c.LogLevel = defaults.LogLevel

	return nil
}

func applyDefaults(values *Config, defaults Config) {
	if values.LogLevel == "" {
		values.LogLevel = defaults.LogLevel
	}
}

// loadEnvFiles exports the variables of the dotenv files that are not already
// set in the environment. Missing files are skipped.
func loadEnvFiles(fileNames []string) error {
	for _, fileName := range fileNames {
		err := godotenv.Load(fileName)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}

		return fmt.Errorf("in config.loadEnvFiles(): error while loading %q: %w", fileName, err)
	}

	return nil
}

// New builds a validated Config. The environment wins over dotenv values,
// and dotenv values win over defaults. An unrecognized log level never fails
// New: the default level is used and the value is kept in RejectedLogLevel.
func New(optionsProto ...InitOption) (*Config, error) {
	options := &initOptions{
		envFiles: []string{".env"},
	}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	if err := loadEnvFiles(options.envFiles); err != nil {
		return nil, err
	}

	values := &Config{}
	if err := env.Parse(values); err != nil {
		return nil, fmt.Errorf("in config.New(): error while parsing environment: %w", err)
	}

	applyDefaults(values, defaultConfig)
	values.LogLevel = normalizeLogLevel(values.LogLevel)

	if err := values.validate(); err != nil {
		if err := values.fallbackOnInvalidLogLevel(err, defaultConfig); err != nil {
			return nil, err
		}
	}

	return values, nil
}
