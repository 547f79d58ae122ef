package docscheck

// Options configures a documentation check. Paths are relative to the
// project root unless absolute.
type Options struct {
	// Overview is the authoritative index document.
	Overview string `mapstructure:"overview" json:"overview"`
	// DocsDir is the documentation root walked for orphans and used as the
	// first base when resolving links.
	DocsDir string `mapstructure:"docs_dir" json:"docs_dir"`
	// MarkdownExtensions are matched case-sensitively against file names.
	MarkdownExtensions []string `mapstructure:"markdown_extensions" json:"markdown_extensions"`
	// WorkflowFiles must each exist and carry enough RequiredReferences.
	WorkflowFiles      []string `mapstructure:"workflow_files" json:"workflow_files"`
	RequiredReferences []string `mapstructure:"required_references" json:"required_references"`
	MinReferences      int      `mapstructure:"min_references" json:"min_references"`
	// Checklist is audited for checkbox format when present.
	Checklist string `mapstructure:"checklist" json:"checklist"`
	// MinEmptyCheckboxes below this count produce an advisory, never an issue.
	MinEmptyCheckboxes int `mapstructure:"min_empty_checkboxes" json:"min_empty_checkboxes"`
}

// DefaultOptions returns the layout of the Next.js starter template.
func DefaultOptions() Options {
	return Options{
		Overview:           "docs/OVERVIEW.MD",
		DocsDir:            "docs",
		MarkdownExtensions: []string{".md"},
		WorkflowFiles: []string{
			"AI-WORKFLOWS/START-PROMPT.md",
			"AI-WORKFLOWS/CONTEXT-KEEPER.md",
		},
		RequiredReferences: []string{"docs/OVERVIEW.MD", "CHECKLIST.MD", "WORKFLOWS.MD"},
		MinReferences:      2,
		Checklist:          "docs/CHECKLIST.MD",
		MinEmptyCheckboxes: 10,
	}
}
