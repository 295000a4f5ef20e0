package config

import "github.com/autocode-dev/autocode/internal/defs"

// Default value constants.
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultStartNumber = 1
	DefaultPromptsDir  = defs.PromptsDir
	DefaultMarkerFile  = defs.MarkerJSON
)

// NewDefaultConfig returns a Config populated with compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Prompts: PromptsConfig{
			Dir: DefaultPromptsDir,
		},
		Session: SessionConfig{
			MarkerFile:  DefaultMarkerFile,
			StartNumber: DefaultStartNumber,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
