// Package interview collects the answers that drive project scaffolding,
// either interactively or from a YAML answers file.
package interview

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/nextkit/internal/output"
)

// Answers are the interview results.
type Answers struct {
	ProjectName   string   `yaml:"name" json:"name"`
	ProjectType   string   `yaml:"type" json:"type"`
	Features      []string `yaml:"features" json:"features"`
	Priority      string   `yaml:"priority" json:"priority"`
	IncludeTests  bool     `yaml:"include_tests" json:"include_tests"`
	IncludeDocker bool     `yaml:"include_docker" json:"include_docker"`
	Description   string   `yaml:"description" json:"description"`
}

// Defaults returns the answers a user gets by pressing enter on every question.
func Defaults() Answers {
	return Answers{
		ProjectName:   "my-nextjs-app",
		ProjectType:   ProjectTypes[0].Value,
		Features:      []string{},
		Priority:      Priorities[0].Value,
		IncludeTests:  true,
		IncludeDocker: false,
		Description:   "Ein Next.js 15+ Projekt",
	}
}

// HasFeature reports whether feature was selected.
func (a Answers) HasFeature(feature string) bool {
	return slices.Contains(a.Features, feature)
}

// FeatureList renders the selected features comma-separated.
func (a Answers) FeatureList() string {
	return strings.Join(a.Features, ", ")
}

// Validate checks every answer against its allowed values.
func (a Answers) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ProjectName, validation.Required),
		validation.Field(&a.ProjectType, validation.Required, validation.In(values(ProjectTypes)...)),
		validation.Field(&a.Features, validation.Each(validation.In(values(Features)...))),
		validation.Field(&a.Priority, validation.Required, validation.In(values(Priorities)...)),
	)
}

// LoadFile reads answers from a YAML file. Omitted fields keep their defaults.
func LoadFile(path string) (Answers, error) {
	answers := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Answers{}, output.NewUserError("answers file not found: " + path)
		}
		return Answers{}, output.NewSystemErrorWithCause("reading "+path, err)
	}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return Answers{}, output.NewUserError(fmt.Sprintf("parsing %s: %v", path, err))
	}
	if answers.Features == nil {
		answers.Features = []string{}
	}
	if err := answers.Validate(); err != nil {
		return Answers{}, output.NewUserError(fmt.Sprintf("invalid answers in %s: %v", path, err))
	}
	return answers, nil
}

func values(choices []Choice) []any {
	out := make([]any, len(choices))
	for i, c := range choices {
		out[i] = c.Value
	}
	return out
}
