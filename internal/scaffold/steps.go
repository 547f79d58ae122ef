package scaffold

import (
	"fmt"
	"strings"
)

// templateFile maps an embedded template to its project path.
type templateFile struct {
	name string
	rel  string
}

type dependency struct {
	section string
	name    string
	version string
}

func (s *Scaffolder) dependencies() []dependency {
	var deps []dependency
	a := s.answers
	if a.HasFeature("auth") {
		deps = append(deps, dependency{"dependencies", "next-auth", "^4.24.0"})
	}
	if a.HasFeature("database") {
		deps = append(deps,
			dependency{"dependencies", "@prisma/client", "^5.0.0"},
			dependency{"devDependencies", "prisma", "^5.0.0"})
	}
	if a.HasFeature("tailwind") {
		deps = append(deps,
			dependency{"devDependencies", "tailwindcss", "^3.4.0"},
			dependency{"devDependencies", "postcss", "^8.4.0"},
			dependency{"devDependencies", "autoprefixer", "^10.4.0"})
	}
	if a.HasFeature("payments") {
		deps = append(deps, dependency{"dependencies", "stripe", "^14.0.0"})
	}
	if a.IncludeTests {
		deps = append(deps,
			dependency{"devDependencies", "jest", "^29.7.0"},
			dependency{"devDependencies", "@testing-library/react", "^14.1.0"},
			dependency{"devDependencies", "@testing-library/jest-dom", "^6.1.0"})
	}
	return deps
}

func (s *Scaffolder) updatePackageJSON() (string, error) {
	data, err := s.readFile("package.json")
	if err != nil {
		return "", err
	}
	m, err := parseManifest([]byte(data))
	if err != nil {
		return "", err
	}
	if err := m.setString("name", s.answers.ProjectName); err != nil {
		return "", err
	}
	if err := m.setString("description", s.answers.Description); err != nil {
		return "", err
	}
	deps := s.dependencies()
	for _, d := range deps {
		if err := m.addDependency(d.section, d.name, d.version); err != nil {
			return "", err
		}
	}
	out, err := m.bytes()
	if err != nil {
		return "", err
	}
	if err := s.writeFile("package.json", string(out)); err != nil {
		return "", err
	}
	return fmt.Sprintf("package.json updated (%d dependencies added)", len(deps)), nil
}

func (s *Scaffolder) writeNextConfig() (string, error) {
	tmpl, err := fileTemplate("next.config.js")
	if err != nil {
		return "", err
	}
	vars := map[string]string{"i18n_block": "", "analytics_block": ""}
	if s.answers.HasFeature("i18n") {
		vars["i18n_block"] = "  i18n: {\n    locales: [\"de\", \"en\"],\n    defaultLocale: \"de\"\n  },\n"
	}
	if s.answers.HasFeature("analytics") {
		vars["analytics_block"] = "  analytics: {\n    vercel: true\n  },\n"
	}
	if err := s.writeFile("next.config.js", render(tmpl, vars)); err != nil {
		return "", err
	}
	return "next.config.js created", nil
}

func (s *Scaffolder) writeTSConfig() (string, error) {
	tmpl, err := fileTemplate("tsconfig.json")
	if err != nil {
		return "", err
	}
	if err := s.writeFile("tsconfig.json", tmpl); err != nil {
		return "", err
	}
	return "tsconfig.json created", nil
}

func (s *Scaffolder) writeTailwind() (string, error) {
	for _, name := range []string{"tailwind.config.js", "postcss.config.js"} {
		tmpl, err := fileTemplate(name)
		if err != nil {
			return "", err
		}
		if err := s.writeFile(name, tmpl); err != nil {
			return "", err
		}
	}
	return "Tailwind CSS configured", nil
}

const startPrompt = "AI-WORKFLOWS/START-PROMPT.md"

func (s *Scaffolder) updateAIWorkflows() (string, error) {
	content, err := s.readFile(startPrompt)
	if err != nil {
		return "", err
	}
	// Only the first occurrence of each placeholder is filled.
	for _, r := range []struct{ placeholder, value string }{
		{"[PROJECT_NAME]", s.answers.ProjectName},
		{"[PROJECT_TYPE]", s.answers.ProjectType},
		{"[PROJECT_FEATURES]", s.answers.FeatureList()},
		{"[PROJECT_PRIORITIES]", s.answers.Priority},
	} {
		content = strings.Replace(content, r.placeholder, r.value, 1)
	}
	if err := s.writeFile(startPrompt, content); err != nil {
		return "", err
	}
	return "AI workflows customized", nil
}

func (s *Scaffolder) writeStarterFiles() (string, error) {
	for _, dir := range []string{"src/app", "src/components", "src/lib"} {
		if err := s.mkdir(dir); err != nil {
			return "", err
		}
	}

	vars := map[string]string{
		"project_name":  s.answers.ProjectName,
		"description":   s.answers.Description,
		"body_class":    "",
		"main_class":    "",
		"heading_class": "",
		"text_class":    "",
	}
	if s.answers.HasFeature("tailwind") {
		vars["body_class"] = ` className="font-sans"`
		vars["main_class"] = ` className="container mx-auto p-8"`
		vars["heading_class"] = ` className="text-4xl font-bold mb-4"`
		vars["text_class"] = ` className="text-gray-600"`
	}

	for _, f := range []templateFile{{"layout.tsx", "src/app/layout.tsx"}, {"page.tsx", "src/app/page.tsx"}} {
		tmpl, err := fileTemplate(f.name)
		if err != nil {
			return "", err
		}
		if err := s.writeFile(f.rel, render(tmpl, vars)); err != nil {
			return "", err
		}
	}
	return "Next.js starter files created", nil
}

func (s *Scaffolder) writeDocker() (string, error) {
	for _, f := range []templateFile{{"Dockerfile", "Dockerfile"}, {"dockerignore", ".dockerignore"}} {
		tmpl, err := fileTemplate(f.name)
		if err != nil {
			return "", err
		}
		if err := s.writeFile(f.rel, tmpl); err != nil {
			return "", err
		}
	}
	return "Docker setup created", nil
}
