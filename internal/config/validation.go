package config

import (
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if strings.TrimSpace(cfg.Prompts.Dir) == "" {
		errs = append(errs, ValidationError{
			Field:   "prompts.dir",
			Message: "required field is empty",
			Wrapped: ErrInvalidConfig,
		})
	}

	marker := cfg.Session.MarkerFile
	if marker == "" || strings.ContainsAny(marker, `/\`) || marker == "." || marker == ".." {
		errs = append(errs, ValidationError{
			Field:   "session.marker_file",
			Message: "must be a plain file name",
			Value:   marker,
			Wrapped: ErrInvalidConfig,
		})
	}

	if cfg.Session.StartNumber < 1 {
		errs = append(errs, ValidationError{
			Field:   "session.start_number",
			Message: "must be at least 1",
			Value:   cfg.Session.StartNumber,
			Wrapped: ErrInvalidConfig,
		})
	}

	if !slices.Contains(validLogLevels, strings.ToLower(cfg.Log.Level)) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: "must be one of: " + strings.Join(validLogLevels, ", "),
			Value:   cfg.Log.Level,
			Wrapped: ErrInvalidLogLevel,
		})
	}

	if !slices.Contains(validLogFormats, strings.ToLower(cfg.Log.Format)) {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: "must be one of: " + strings.Join(validLogFormats, ", "),
			Value:   cfg.Log.Format,
			Wrapped: ErrInvalidLogFormat,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
