// Package structure validates that a project carries the files and
// directories the starter template expects.
package structure

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/gorewood/nextkit/internal/output"
)

// Status is the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Check is the result of one validation.
type Check struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// Summary counts checks by status.
type Summary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// Report holds every check grouped by section.
type Report struct {
	Root    string  `json:"root"`
	OK      bool    `json:"ok"`
	Files   []Check `json:"files"`
	Dirs    []Check `json:"dirs"`
	Special []Check `json:"special"`
	Summary Summary `json:"summary"`
}

// Options lists what a valid project contains. Paths are relative to the
// project root.
type Options struct {
	RequiredFiles   []string `mapstructure:"required_files" json:"required_files"`
	RequiredDirs    []string `mapstructure:"required_dirs" json:"required_dirs"`
	RequiredScripts []string `mapstructure:"required_scripts" json:"required_scripts"`
	// LegacyChecklist is only inspected when present.
	LegacyChecklist string `mapstructure:"legacy_checklist" json:"legacy_checklist"`
	// MinCheckboxes must be exceeded for the legacy checklist to pass.
	MinCheckboxes int `mapstructure:"min_checkboxes" json:"min_checkboxes"`
}

// DefaultOptions returns the starter template's layout.
func DefaultOptions() Options {
	return Options{
		RequiredFiles: []string{
			"docs/OVERVIEW.MD",
			"docs/CHECKLIST.MD",
			"docs/WORKFLOWS.MD",
			"AI-WORKFLOWS/START-PROMPT.md",
			"AI-WORKFLOWS/CONTEXT-KEEPER.md",
			"package.json",
			"PROJECT-SETUP.md",
		},
		RequiredDirs:    []string{"docs", "AI-WORKFLOWS", "scripts"},
		RequiredScripts: []string{"setup", "dev", "validate", "ai-check"},
		LegacyChecklist: "docs/_CHECKLIST.md",
		MinCheckboxes:   10,
	}
}

const manifestFile = "package.json"

var emptyBox = regexp.MustCompile(`- \[ \]`)

// Validate runs every check against root. Failures to read an existing file
// are returned as system errors; everything else is reported as a check.
func Validate(root string, opts Options, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	report := &Report{Root: root, Files: []Check{}, Dirs: []Check{}, Special: []Check{}}

	for _, file := range opts.RequiredFiles {
		ok, err := exists(filepath.Join(root, file))
		if err != nil {
			return nil, err
		}
		report.Files = append(report.Files, presence(file, ok))
	}

	for _, dir := range opts.RequiredDirs {
		ok, err := exists(filepath.Join(root, dir))
		if err != nil {
			return nil, err
		}
		report.Dirs = append(report.Dirs, presence(dir+"/", ok))
	}

	if opts.LegacyChecklist != "" {
		check, err := checkLegacyChecklist(root, opts)
		if err != nil {
			return nil, err
		}
		if check != nil {
			report.Special = append(report.Special, *check)
		}
	}

	scripts, err := checkScripts(root, opts.RequiredScripts)
	if err != nil {
		return nil, err
	}
	report.Special = append(report.Special, scripts...)

	nextjs, err := checkNextStructure(root)
	if err != nil {
		return nil, err
	}
	report.Special = append(report.Special, nextjs)

	for _, section := range [][]Check{report.Files, report.Dirs, report.Special} {
		for _, check := range section {
			switch check.Status {
			case StatusPass:
				report.Summary.Passed++
			case StatusWarn:
				report.Summary.Warnings++
			case StatusFail:
				report.Summary.Failed++
			}
		}
	}
	report.OK = report.Summary.Failed == 0

	logger.Debug("structure validated",
		zap.String("root", root),
		zap.Int("passed", report.Summary.Passed),
		zap.Int("warnings", report.Summary.Warnings),
		zap.Int("failed", report.Summary.Failed))
	return report, nil
}

func presence(name string, ok bool) Check {
	if ok {
		return Check{Name: name, Status: StatusPass, Message: "present"}
	}
	return Check{
		Name:    name,
		Status:  StatusFail,
		Message: "missing",
		Hint:    "Restore it from the template or run 'nextkit setup'",
	}
}

func checkLegacyChecklist(root string, opts Options) (*Check, error) {
	data, ok, err := readOptional(filepath.Join(root, opts.LegacyChecklist), opts.LegacyChecklist)
	if err != nil || !ok {
		return nil, err
	}
	count := len(emptyBox.FindAllIndex(data, -1))
	name := "Checkboxes in " + filepath.Base(opts.LegacyChecklist)
	if count > opts.MinCheckboxes {
		return &Check{Name: name, Status: StatusPass, Message: fmt.Sprintf("%d open", count)}, nil
	}
	return &Check{
		Name:    name,
		Status:  StatusWarn,
		Message: fmt.Sprintf("only %d open", count),
		Hint:    fmt.Sprintf("Add tasks until there are more than %d", opts.MinCheckboxes),
	}, nil
}

func checkScripts(root string, required []string) ([]Check, error) {
	data, ok, err := readOptional(filepath.Join(root, manifestFile), manifestFile)
	if err != nil || !ok {
		return nil, err
	}

	var manifest struct {
		Scripts map[string]any `json:"scripts"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return []Check{{
			Name:    manifestFile,
			Status:  StatusFail,
			Message: "not valid JSON: " + err.Error(),
		}}, nil
	}

	checks := make([]Check, 0, len(required))
	for _, script := range required {
		name := "npm script: " + script
		if truthy(manifest.Scripts[script]) {
			checks = append(checks, Check{Name: name, Status: StatusPass, Message: "defined"})
			continue
		}
		checks = append(checks, Check{
			Name:    name,
			Status:  StatusFail,
			Message: "not defined",
			Hint:    fmt.Sprintf("Add a %q entry to the scripts in package.json", script),
		})
	}
	return checks, nil
}

func checkNextStructure(root string) (Check, error) {
	for _, dir := range []string{"src/app", "pages"} {
		ok, err := exists(filepath.Join(root, dir))
		if err != nil {
			return Check{}, err
		}
		if ok {
			return Check{Name: "Next.js structure", Status: StatusPass, Message: dir + " found"}, nil
		}
	}
	return Check{
		Name:    "Next.js structure",
		Status:  StatusWarn,
		Message: "not set up yet (normal before setup)",
		Hint:    "Run 'nextkit setup'",
	}, nil
}

// truthy reports whether a decoded JSON value would count as set in a
// package.json script table.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	default:
		return true
	}
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrPermission) {
		return false, output.NewSystemErrorWithCause("checking "+path, err)
	}
	return false, nil
}

func readOptional(path, display string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, output.NewSystemErrorWithCause("reading "+display, err)
	}
	return data, true, nil
}
