package config

// Config is the root configuration.
type Config struct {
	Prompts PromptsConfig `yaml:"prompts"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

// PromptsConfig selects the template directory and project variant.
type PromptsConfig struct {
	// Dir is the prompts directory. Relative paths resolve against the
	// working directory of the process.
	Dir string `yaml:"dir"`
	// ActiveProject selects <project>_ prefixed templates.
	ActiveProject string `yaml:"active_project"`
	// AllowReset lets a running driver clear the active project.
	AllowReset bool `yaml:"allow_project_reset"`
}

// SessionConfig holds session bookkeeping settings.
type SessionConfig struct {
	// MarkerFile is the marker file name inside the project directory.
	MarkerFile string `yaml:"marker_file"`
	// StartNumber is the session number used when none is given.
	StartNumber int `yaml:"start_number"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

