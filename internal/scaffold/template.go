package scaffold

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates/docs/*.md templates/files/*
var templatesFS embed.FS

// DocTemplate is a generated documentation file with its metadata.
type DocTemplate struct {
	// Path is relative to the docs directory.
	Path        string `yaml:"path"`
	Description string `yaml:"description"`

	Content string `yaml:"-"`
}

// loadDocTemplates parses every embedded documentation template, keyed by Path.
func loadDocTemplates() (map[string]*DocTemplate, error) {
	entries, err := templatesFS.ReadDir("templates/docs")
	if err != nil {
		return nil, fmt.Errorf("reading doc templates: %w", err)
	}
	templates := make(map[string]*DocTemplate, len(entries))
	for _, entry := range entries {
		data, err := templatesFS.ReadFile("templates/docs/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading doc template %s: %w", entry.Name(), err)
		}
		tmpl, err := parseDocTemplate(string(data))
		if err != nil {
			return nil, fmt.Errorf("doc template %s: %w", entry.Name(), err)
		}
		if tmpl.Path == "" {
			return nil, fmt.Errorf("doc template %s: missing path", entry.Name())
		}
		templates[tmpl.Path] = tmpl
	}
	return templates, nil
}

// DocTemplatePaths lists the paths of every embedded documentation template.
func DocTemplatePaths() []string {
	templates, err := loadDocTemplates()
	if err != nil {
		return nil
	}
	paths := make([]string, 0, len(templates))
	for p := range templates {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func parseDocTemplate(raw string) (*DocTemplate, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl DocTemplate
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}
	tmpl.Content = strings.TrimSpace(content)
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter delimited by --- lines from content.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}
	before, after, ok := strings.Cut(raw[3:], "\n---")
	if !ok {
		return "", raw
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// fileTemplate returns an embedded file template verbatim.
func fileTemplate(name string) (string, error) {
	data, err := templatesFS.ReadFile("templates/files/" + name)
	if err != nil {
		return "", fmt.Errorf("reading file template %s: %w", name, err)
	}
	return string(data), nil
}

// render substitutes {{key}} variables. Unknown variables are left in place.
func render(content string, vars map[string]string) string {
	for key, val := range vars {
		content = strings.ReplaceAll(content, "{{"+key+"}}", val)
	}
	return content
}
