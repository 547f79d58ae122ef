// Package updates reports template updates newer than a project's
// templateVersion. The catalog is compiled in; nothing is fetched.
package updates

// Category ranks how urgently an update should be applied.
type Category string

const (
	CategoryCritical    Category = "CRITICAL"
	CategoryRecommended Category = "RECOMMENDED"
	CategoryOptional    Category = "OPTIONAL"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryCritical, CategoryRecommended, CategoryOptional}

// Update is one released template change.
type Update struct {
	Version     string   `json:"version"`
	Type        string   `json:"type"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Files       []string `json:"files"`
	ReleaseDate string   `json:"releaseDate"`
}

// Catalog returns the known template releases in ascending version order.
func Catalog() []Update {
	return []Update{
		{
			Version:     "1.0.1",
			Type:        "PATCH",
			Category:    CategoryCritical,
			Title:       "Security fix in GitHub workflows",
			Description: "Fixes a critical vulnerability in the CI/CD pipeline",
			Files:       []string{".github/workflows/validate-docs.yml"},
			ReleaseDate: "2024-01-15",
		},
		{
			Version:     "1.1.0",
			Type:        "MINOR",
			Category:    CategoryRecommended,
			Title:       "New HOTFIX workflow",
			Description: "Workflow for fast hotfix deployments",
			Files:       []string{"docs/workflows/HOTFIX.md", "scripts/hotfix-deploy.sh"},
			ReleaseDate: "2024-01-20",
		},
		{
			Version:     "1.1.1",
			Type:        "PATCH",
			Category:    CategoryRecommended,
			Title:       "Improved AI prompts",
			Description: "Tuned prompts for better AI assistance",
			Files:       []string{"AI-WORKFLOWS/CONTEXT-KEEPER.md", "AI-WORKFLOWS/START-PROMPT.md"},
			ReleaseDate: "2024-01-22",
		},
		{
			Version:     "1.2.0",
			Type:        "MINOR",
			Category:    CategoryOptional,
			Title:       "Alternative prompt collection",
			Description: "Additional prompt variants for different scenarios",
			Files:       []string{"AI-WORKFLOWS/ALTERNATIVE-PROMPTS.md"},
			ReleaseDate: "2024-01-25",
		},
	}
}
