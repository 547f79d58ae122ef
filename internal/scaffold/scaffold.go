package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/gorewood/nextkit/internal/interview"
)

// Status is the outcome of a step.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
	StatusDryRun  Status = "dry_run"
)

// StepResult reports one scaffolding step.
type StepResult struct {
	Name    string   `json:"name"`
	Status  Status   `json:"status"`
	Message string   `json:"message"`
	Files   []string `json:"files,omitempty"`
}

// Result is a complete scaffolding run.
type Result struct {
	Project string       `json:"project"`
	DryRun  bool         `json:"dry_run"`
	OK      bool         `json:"ok"`
	Steps   []StepResult `json:"steps"`
}

// Failed returns the steps that failed.
func (r *Result) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// Options configures a Scaffolder.
type Options struct {
	DryRun bool
	// Now supplies the date stamped into generated documents.
	Now    func() time.Time
	Logger *zap.Logger
}

// Scaffolder writes project files for one set of answers.
type Scaffolder struct {
	root    string
	answers interview.Answers
	dryRun  bool
	now     func() time.Time
	logger  *zap.Logger

	written []string
}

// New creates a Scaffolder rooted at root.
func New(root string, answers interview.Answers, opts Options) *Scaffolder {
	s := &Scaffolder{
		root:    root,
		answers: answers,
		dryRun:  opts.DryRun,
		now:     opts.Now,
		logger:  opts.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

type step struct {
	name string
	// when reports whether the step applies; nil means always.
	when func(interview.Answers) bool
	run  func(*Scaffolder) (string, error)
}

var steps = []step{
	{name: "package_json", run: (*Scaffolder).updatePackageJSON},
	{name: "next_config", run: (*Scaffolder).writeNextConfig},
	{name: "tsconfig", run: (*Scaffolder).writeTSConfig},
	{name: "tailwind", when: func(a interview.Answers) bool { return a.HasFeature("tailwind") }, run: (*Scaffolder).writeTailwind},
	{name: "ai_workflows", run: (*Scaffolder).updateAIWorkflows},
	{name: "starter_files", run: (*Scaffolder).writeStarterFiles},
	{name: "docker", when: func(a interview.Answers) bool { return a.IncludeDocker }, run: (*Scaffolder).writeDocker},
	{name: "documentation", run: (*Scaffolder).updateDocumentation},
}

// StepNames lists every step in execution order.
func StepNames() []string {
	names := make([]string, len(steps))
	for i, st := range steps {
		names[i] = st.name
	}
	return names
}

// Run executes every step in order.
func (s *Scaffolder) Run() *Result {
	result := &Result{Project: s.answers.ProjectName, DryRun: s.dryRun, Steps: make([]StepResult, 0, len(steps))}
	for _, st := range steps {
		if st.when != nil && !st.when(s.answers) {
			result.Steps = append(result.Steps, StepResult{Name: st.name, Status: StatusSkipped, Message: "not selected"})
			continue
		}

		s.written = nil
		msg, err := st.run(s)
		sr := StepResult{Name: st.name, Message: msg, Files: s.written}
		switch {
		case err != nil:
			sr.Status = StatusFailed
			sr.Message = err.Error()
			s.logger.Warn("scaffold step failed", zap.String("step", st.name), zap.Error(err))
		case s.dryRun:
			sr.Status = StatusDryRun
		default:
			sr.Status = StatusOK
		}
		s.logger.Debug("scaffold step", zap.String("step", st.name), zap.String("status", string(sr.Status)))
		result.Steps = append(result.Steps, sr)
	}
	result.OK = len(result.Failed()) == 0
	return result
}

func (s *Scaffolder) path(rel string) string {
	return filepath.Join(s.root, rel)
}

// readFile reads a project file. Absence is reported as a plain error
// naming the file.
func (s *Scaffolder) readFile(rel string) (string, error) {
	data, err := os.ReadFile(s.path(rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s not found", rel)
		}
		return "", fmt.Errorf("reading %s: %w", rel, err)
	}
	return string(data), nil
}

// writeFile records rel and writes it unless in dry-run mode.
func (s *Scaffolder) writeFile(rel, content string) error {
	s.written = append(s.written, rel)
	if s.dryRun {
		return nil
	}
	path := s.path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

func (s *Scaffolder) mkdir(rel string) error {
	s.written = append(s.written, rel+"/")
	if s.dryRun {
		return nil
	}
	if err := os.MkdirAll(s.path(rel), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", rel, err)
	}
	return nil
}

// FormatDate renders t as day.month.year without padding.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}
