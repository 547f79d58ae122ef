package config

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gorewood/nextkit/internal/logging"
)

var extensionRe = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)

// Validate validates the configuration section by section.
func (c *Config) Validate() error {
	sections := []struct {
		name     string
		validate func() error
	}{
		{"log", c.validateLog},
		{"check", c.validateCheck},
		{"validate", c.validateStructure},
		{"updates", c.validateUpdates},
	}
	for _, s := range sections {
		if err := s.validate(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

func (c *Config) validateLog() error {
	return validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level, validation.Required,
			validation.In(logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError)),
		validation.Field(&c.Log.Format, validation.Required,
			validation.In(logging.FormatConsole, logging.FormatStructured)),
	)
}

func (c *Config) validateCheck() error {
	check := &c.Check
	return validation.ValidateStruct(check,
		validation.Field(&check.Overview, validation.Required),
		validation.Field(&check.DocsDir, validation.Required),
		validation.Field(&check.MarkdownExtensions, validation.Required,
			validation.Each(validation.Required, validation.Match(extensionRe))),
		validation.Field(&check.WorkflowFiles, validation.Each(validation.Required)),
		validation.Field(&check.RequiredReferences, validation.Each(validation.Required)),
		validation.Field(&check.MinReferences, validation.Min(0)),
		validation.Field(&check.Checklist, validation.Required),
		validation.Field(&check.MinEmptyCheckboxes, validation.Min(0)),
	)
}

func (c *Config) validateStructure() error {
	s := &c.Structure
	return validation.ValidateStruct(s,
		validation.Field(&s.RequiredFiles, validation.Each(validation.Required)),
		validation.Field(&s.RequiredDirs, validation.Each(validation.Required)),
		validation.Field(&s.RequiredScripts, validation.Each(validation.Required)),
		validation.Field(&s.MinCheckboxes, validation.Min(0)),
	)
}

func (c *Config) validateUpdates() error {
	u := &c.Updates
	return validation.ValidateStruct(u,
		validation.Field(&u.Manifest, validation.Required),
		validation.Field(&u.OutputDir, validation.Required),
	)
}
