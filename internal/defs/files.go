package defs

// Common file names used across the project.
const (
	// MarkerJSON is the tracker marker file written into a project directory
	// once the remote ClickUp list has been created.
	MarkerJSON = ".clickup_project.json"

	// AppSpecTXT is both the default specification template and the name
	// the specification is staged under inside a project directory.
	AppSpecTXT = "app_spec.txt"

	// ConfigYAML is the autocode configuration file inside ConfigDir.
	ConfigYAML = "config.yaml"
)

// Directory names.
const (
	// ConfigDir holds per-project autocode configuration.
	ConfigDir = ".autocode"

	// PromptsDir is the default prompts directory, relative to the working directory.
	PromptsDir = "prompts"
)

// Template file name suffixes.
const (
	PromptSuffix = "_prompt.md"
	SpecSuffix   = "_spec.txt"
)
