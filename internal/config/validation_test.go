package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
		wantErr   error
	}{
		{
			name:   "defaults_valid",
			mutate: func(*Config) {},
		},
		{
			name:      "empty_prompts_dir",
			mutate:    func(c *Config) { c.Prompts.Dir = "  " },
			wantField: "prompts.dir",
			wantErr:   ErrInvalidConfig,
		},
		{
			name:      "marker_with_path",
			mutate:    func(c *Config) { c.Session.MarkerFile = "../marker.json" },
			wantField: "session.marker_file",
			wantErr:   ErrInvalidConfig,
		},
		{
			name:      "zero_start_number",
			mutate:    func(c *Config) { c.Session.StartNumber = 0 },
			wantField: "session.start_number",
			wantErr:   ErrInvalidConfig,
		},
		{
			name:      "bad_log_format",
			mutate:    func(c *Config) { c.Log.Format = "xml" },
			wantField: "log.format",
			wantErr:   ErrInvalidLogFormat,
		},
		{
			name:   "uppercase_level_accepted",
			mutate: func(c *Config) { c.Log.Level = "DEBUG" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			var verrs *ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() error type = %T, want *ValidationErrors", err)
			}
			if !strings.Contains(verrs.Error(), tt.wantField) {
				t.Errorf("error %q does not name field %q", verrs.Error(), tt.wantField)
			}
		})
	}
}

func TestValidationErrorsFormatting(t *testing.T) {
	t.Parallel()

	empty := &ValidationErrors{}
	if empty.Error() != "validation: no errors" {
		t.Errorf("empty Error() = %q", empty.Error())
	}

	ve := ValidationError{Field: "log.level", Message: "bad", Value: "loud"}
	if !strings.Contains(ve.Error(), `(got: loud)`) {
		t.Errorf("ValidationError.Error() = %q", ve.Error())
	}
}
