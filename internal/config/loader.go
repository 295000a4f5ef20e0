package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/autocode-dev/autocode/internal/defs"
)

// Environment variables that override file values.
const (
	EnvConfigDir  = "AUTOCODE_CONFIG_DIR"
	EnvPromptsDir = "AUTOCODE_PROMPTS_DIR"
	EnvProject    = "AUTOCODE_PROJECT"
	EnvLogLevel   = "AUTOCODE_LOG_LEVEL"
	EnvAllowReset = "AUTOCODE_ALLOW_PROJECT_RESET"
)

// Load reads <projectDir>/.autocode/config.yaml, or config.yaml inside
// AUTOCODE_CONFIG_DIR when that is set. See LoadDir.
func Load(projectDir string) (*Config, []error, error) {
	configDir := filepath.Join(filepath.Clean(projectDir), defs.ConfigDir)
	if envDir := os.Getenv(EnvConfigDir); envDir != "" {
		configDir = envDir
	}
	return LoadDir(configDir)
}

// LoadDir reads config.yaml from configDir, merges it over compiled
// defaults, applies environment overrides and validates the result. A
// missing file yields defaults. An unreadable or unparsable file also
// yields defaults and is reported in the returned warnings, for the caller
// to log once its logger exists.
func LoadDir(configDir string) (*Config, []error, error) {
	cfg := NewDefaultConfig()
	path := filepath.Join(filepath.Clean(configDir), defs.ConfigYAML)

	var warnings []error
	if _, err := loadYAMLFile(path, cfg); err != nil {
		warnings = append(warnings, fmt.Errorf("%s: %w", path, err))
		cfg = NewDefaultConfig()
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, warnings, err
	}
	return cfg, warnings, nil
}

// loadYAMLFile unmarshals the file at path into target. Returns (true, nil)
// if the file was found and parsed, (false, nil) if it does not exist.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w: %v", filepath.Base(path), ErrInvalidYAML, err)
	}
	return true, nil
}

// applyEnvOverrides applies AUTOCODE_* variables, which take priority over
// file values.
func applyEnvOverrides(cfg *Config) {
	if dir := os.Getenv(EnvPromptsDir); dir != "" {
		cfg.Prompts.Dir = dir
	}
	if project := os.Getenv(EnvProject); project != "" {
		cfg.Prompts.ActiveProject = project
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
	if v := os.Getenv(EnvAllowReset); v != "" {
		if allow, err := strconv.ParseBool(v); err == nil {
			cfg.Prompts.AllowReset = allow
		}
	}
}
