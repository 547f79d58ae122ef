package scaffold

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"slices"
	"strings"
)

const (
	overviewFile = "docs/OVERVIEW.MD"
	projectFile  = "docs/project/PROJECT.md"
)

// overviewIntro matches the leading heading and first paragraph.
var overviewIntro = regexp.MustCompile(`\A# [^\n]+\n\n[^\n]+\n\n`)

func (s *Scaffolder) updateDocumentation() (string, error) {
	date := FormatDate(s.now())
	var errs []error
	var notes []string

	inserted, err := s.updateOverview(date)
	if err != nil {
		errs = append(errs, err)
	} else if !inserted {
		notes = append(notes, "overview intro not found, project info not inserted")
	}

	if err := s.updateProjectTemplate(date); err != nil {
		errs = append(errs, err)
	}

	generated, err := s.writeFeatureDocs(date)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	msg := fmt.Sprintf("documentation updated (%d feature documents)", generated)
	if len(notes) > 0 {
		msg += "; " + strings.Join(notes, "; ")
	}
	return msg, nil
}

func (s *Scaffolder) projectInfo(date string) string {
	a := s.answers
	return fmt.Sprintf(`
## 🎯 Project Information

- **Name**: %s
- **Type**: %s
- **Description**: %s
- **Priority**: %s
- **Features**: %s
- **Setup date**: %s

---

`, a.ProjectName, a.ProjectType, a.Description, a.Priority, a.FeatureList(), date)
}

// updateOverview inserts the project info block after the overview's heading
// and first paragraph. It reports false when the overview has no such intro.
func (s *Scaffolder) updateOverview(date string) (bool, error) {
	content, err := s.readFile(overviewFile)
	if err != nil {
		return false, err
	}
	loc := overviewIntro.FindStringIndex(content)
	if loc == nil {
		return false, nil
	}
	updated := content[:loc[1]] + s.projectInfo(date) + content[loc[1]:]
	return true, s.writeFile(overviewFile, updated)
}

func (s *Scaffolder) updateProjectTemplate(date string) error {
	content, err := s.readFile(projectFile)
	if err != nil {
		return err
	}
	a := s.answers
	for _, r := range []struct{ placeholder, value string }{
		{"[PROJECT_NAME]", a.ProjectName},
		{"[KURZE_BESCHREIBUNG_DES_PROJEKTS]", a.Description},
		{"[CURRENT_VERSION]", "0.1.0"},
		{"[START_DATE]", date},
		{"[PROJECT_TYPE]", a.ProjectType},
		{"[HAUPTTECHNOLOGIEN]", MainTechnologies(a.Features)},
		{"[LAST_UPDATE_DATE]", date},
		{"[MAINTAINER_NAME]", "Project Team"},
	} {
		content = strings.ReplaceAll(content, r.placeholder, r.value)
	}
	if a.HasFeature("auth") {
		content = strings.Replace(content, "[FEATURE_1]", "User Authentication", 1)
	}
	if a.HasFeature("database") {
		content = strings.Replace(content, "[FEATURE_2]", "Database Integration", 1)
	}
	return s.writeFile(projectFile, content)
}

// MainTechnologies names the stack implied by features.
func MainTechnologies(features []string) string {
	tech := []string{"Next.js 15", "TypeScript", "React"}
	if slices.Contains(features, "tailwind") {
		tech = append(tech, "Tailwind CSS")
	}
	if slices.Contains(features, "database") {
		tech = append(tech, "Prisma", "PostgreSQL")
	}
	if slices.Contains(features, "auth") {
		tech = append(tech, "NextAuth.js")
	}
	return strings.Join(tech, ", ")
}

// FeatureDocs lists the docs-relative paths generated for the answers.
func (s *Scaffolder) FeatureDocs() []string {
	var docs []string
	if s.answers.HasFeature("auth") {
		docs = append(docs, "security/AUTH.md", "api/AUTH.md")
	}
	if s.answers.HasFeature("database") {
		docs = append(docs, "database/SCHEMA.md", "database/MODELS.md")
	}
	if s.answers.HasFeature("payments") {
		docs = append(docs, "api/PAYMENTS.md")
	}
	if s.answers.Priority == "security" {
		docs = append(docs, "security/OWASP.md", "security/RATE_LIMITING.md")
	}
	return docs
}

func (s *Scaffolder) writeFeatureDocs(date string) (int, error) {
	docs := s.FeatureDocs()
	if len(docs) == 0 {
		return 0, nil
	}
	templates, err := loadDocTemplates()
	if err != nil {
		return 0, err
	}

	authMethod := "- Custom Authentication"
	if s.answers.HasFeature("auth") {
		authMethod = "- NextAuth.js Integration"
	}
	vars := map[string]string{
		"project_name": s.answers.ProjectName,
		"date":         date,
		"auth_method":  authMethod,
	}

	for _, doc := range docs {
		content := fmt.Sprintf("# %s\n\nDocumentation for %s.\n\n---\n**Auto-generated on %s**", doc, s.answers.ProjectName, date)
		if tmpl, ok := templates[doc]; ok {
			content = render(tmpl.Content, vars)
		}
		if err := s.writeFile(path.Join("docs", doc), content); err != nil {
			return 0, err
		}
	}
	return len(docs), nil
}
