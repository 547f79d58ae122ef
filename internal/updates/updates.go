package updates

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	"github.com/gorewood/nextkit/internal/output"
)

// UnknownVersion is assumed when the manifest has no templateVersion.
const UnknownVersion = "0.0.0"

// InfoFile is the name of the saved report inside the output directory.
const InfoFile = "template-updates.json"

// Options locates the manifest and the saved report.
type Options struct {
	Manifest  string `mapstructure:"manifest" json:"manifest"`
	OutputDir string `mapstructure:"output_dir" json:"output_dir"`
}

// DefaultOptions reads package.json and saves into .temp.
func DefaultOptions() Options {
	return Options{Manifest: "package.json", OutputDir: ".temp"}
}

// Group is the updates of one category.
type Group struct {
	Category Category `json:"category"`
	Updates  []Update `json:"updates"`
}

// Summary counts updates per category.
type Summary struct {
	Total       int `json:"total"`
	Critical    int `json:"critical"`
	Recommended int `json:"recommended"`
	Optional    int `json:"optional"`
}

// Info is the document written to InfoFile.
type Info struct {
	CheckDate        string   `json:"checkDate"`
	AvailableUpdates []Update `json:"availableUpdates"`
	Summary          Summary  `json:"summary"`
}

// Result is a complete update check.
type Result struct {
	// CurrentVersion is empty when the manifest carries no version.
	CurrentVersion string   `json:"current_version"`
	Updates        []Update `json:"updates"`
	Groups         []Group  `json:"groups"`
	Summary        Summary  `json:"summary"`
	SavedTo        string   `json:"saved_to,omitempty"`
	SaveError      string   `json:"save_error,omitempty"`
}

// HasCritical reports whether any available update is critical.
func (r *Result) HasCritical() bool {
	return r.Summary.Critical > 0
}

// CurrentVersion reads templateVersion from the manifest at root/manifest.
// A missing manifest or field yields "".
func CurrentVersion(root, manifest string) (string, error) {
	path := manifest
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, manifest)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", output.NewSystemErrorWithCause("reading "+manifest, err)
	}
	var pkg struct {
		TemplateVersion string `json:"templateVersion"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", output.NewUserError(fmt.Sprintf("parsing %s: %v", manifest, err))
	}
	return pkg.TemplateVersion, nil
}

// Compare returns -1, 0 or 1 as a is older than, equal to, or newer than b.
func Compare(a, b string) (int, error) {
	va, err := semver.NewVersion(a)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", a, err)
	}
	vb, err := semver.NewVersion(b)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

// Available returns the catalog entries strictly newer than current, in
// catalog order. An empty current counts as UnknownVersion.
func Available(current string, catalog []Update) ([]Update, error) {
	if current == "" {
		current = UnknownVersion
	}
	base, err := semver.NewVersion(current)
	if err != nil {
		return nil, output.NewUserError(fmt.Sprintf("invalid templateVersion %q: %v", current, err))
	}
	newer := []Update{}
	for _, u := range catalog {
		v, err := semver.NewVersion(u.Version)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", u.Version, err)
		}
		if v.GreaterThan(base) {
			newer = append(newer, u)
		}
	}
	return newer, nil
}

// GroupByCategory buckets updates in Categories order. Empty buckets are
// included.
func GroupByCategory(updates []Update) []Group {
	groups := make([]Group, 0, len(Categories))
	for _, c := range Categories {
		g := Group{Category: c, Updates: []Update{}}
		for _, u := range updates {
			if u.Category == c {
				g.Updates = append(g.Updates, u)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// Summarize counts updates per category.
func Summarize(updates []Update) Summary {
	s := Summary{Total: len(updates)}
	for _, u := range updates {
		switch u.Category {
		case CategoryCritical:
			s.Critical++
		case CategoryRecommended:
			s.Recommended++
		case CategoryOptional:
			s.Optional++
		}
	}
	return s
}

// Save writes the update info to dir/InfoFile, creating dir when needed,
// and returns the written path.
func Save(root, dir string, updates []Update, now time.Time) (string, error) {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	info := Info{
		CheckDate:        now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		AvailableUpdates: updates,
		Summary:          Summarize(updates),
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding update info: %w", err)
	}
	path := filepath.Join(dir, InfoFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Evaluate compares the project's templateVersion against the catalog
// without writing anything.
func Evaluate(root string, opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	current, err := CurrentVersion(root, opts.Manifest)
	if err != nil {
		return nil, err
	}
	available, err := Available(current, Catalog())
	if err != nil {
		return nil, err
	}
	logger.Debug("update check",
		zap.String("current", current),
		zap.Int("available", len(available)))
	return &Result{
		CurrentVersion: current,
		Updates:        available,
		Groups:         GroupByCategory(available),
		Summary:        Summarize(available),
	}, nil
}

// Check evaluates root and saves the result into opts.OutputDir.
// A failed save is recorded on the result, never returned.
func Check(root string, opts Options, now time.Time, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	result, err := Evaluate(root, opts, logger)
	if err != nil {
		return nil, err
	}
	saved, err := Save(root, opts.OutputDir, result.Updates, now)
	if err != nil {
		logger.Warn("could not save update info", zap.Error(err))
		result.SaveError = err.Error()
		return result, nil
	}
	result.SavedTo = saved
	return result, nil
}
