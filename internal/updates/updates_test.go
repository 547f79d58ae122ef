package updates

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gorewood/nextkit/internal/output"
)

func versions(updates []Update) []string {
	out := []string{}
	for _, u := range updates {
		out = append(out, u.Version)
	}
	return out
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.1", "1.0.0", 1},
		{"1.0.0", "1.0.1", -1},
		{"1.1", "1.1.0", 0},
		{"1.10.0", "1.9.0", 1},
		{"v2.0.0", "1.9.9", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Compare("latest", "1.0.0")
	assert.Error(t, err)
}

func TestAvailable(t *testing.T) {
	tests := []struct {
		current string
		want    []string
	}{
		{"", []string{"1.0.1", "1.1.0", "1.1.1", "1.2.0"}},
		{"1.0.0", []string{"1.0.1", "1.1.0", "1.1.1", "1.2.0"}},
		{"1.0.1", []string{"1.1.0", "1.1.1", "1.2.0"}},
		{"1.1.1", []string{"1.2.0"}},
		{"1.2.0", []string{}},
		{"2.0.0", []string{}},
	}
	for _, tt := range tests {
		t.Run("current="+tt.current, func(t *testing.T) {
			got, err := Available(tt.current, Catalog())
			require.NoError(t, err)
			assert.Equal(t, tt.want, versions(got))
		})
	}
}

func TestAvailable_InvalidCurrent(t *testing.T) {
	_, err := Available("not-a-version", Catalog())
	require.Error(t, err)
	assert.Equal(t, output.ExitIssues, output.GetExitCode(err))
}

func TestGroupByCategory(t *testing.T) {
	groups := GroupByCategory(Catalog())
	require.Len(t, groups, 3)
	assert.Equal(t, CategoryCritical, groups[0].Category)
	assert.Equal(t, []string{"1.0.1"}, versions(groups[0].Updates))
	assert.Equal(t, []string{"1.1.0", "1.1.1"}, versions(groups[1].Updates))
	assert.Equal(t, []string{"1.2.0"}, versions(groups[2].Updates))

	empty := GroupByCategory(nil)
	require.Len(t, empty, 3)
	assert.Empty(t, empty[0].Updates)
}

func TestCurrentVersion(t *testing.T) {
	root := t.TempDir()

	v, err := CurrentVersion(root, "package.json")
	require.NoError(t, err)
	assert.Equal(t, "", v, "missing manifest")

	writeManifest(t, root, `{"name":"app"}`)
	v, err = CurrentVersion(root, "package.json")
	require.NoError(t, err)
	assert.Equal(t, "", v, "missing field")

	writeManifest(t, root, `{"name":"app","templateVersion":"1.1.0"}`)
	v, err = CurrentVersion(root, "package.json")
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", v)

	writeManifest(t, root, `{broken`)
	_, err = CurrentVersion(root, "package.json")
	assert.Error(t, err)
}

func TestCheck_SavesInfo(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"templateVersion":"1.0.0"}`)
	now := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

	result, err := Check(root, DefaultOptions(), now, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.True(t, result.HasCritical())
	assert.Equal(t, Summary{Total: 4, Critical: 1, Recommended: 2, Optional: 1}, result.Summary)
	assert.Equal(t, filepath.Join(root, ".temp", InfoFile), result.SavedTo)

	data, err := os.ReadFile(result.SavedTo)
	require.NoError(t, err)
	var info Info
	require.NoError(t, json.Unmarshal(data, &info))
	assert.Equal(t, "2024-02-01T09:30:00.000Z", info.CheckDate)
	assert.Len(t, info.AvailableUpdates, 4)
	assert.Equal(t, result.Summary, info.Summary)
}

func TestCheck_UpToDate(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"templateVersion":"1.2.0"}`)

	result, err := Check(root, DefaultOptions(), time.Now(), nil)
	require.NoError(t, err)
	assert.False(t, result.HasCritical())
	assert.Empty(t, result.Updates)
}

func TestCheck_SaveFailureIsNotFatal(t *testing.T) {
	root := t.TempDir()
	// A file where the output directory should be makes MkdirAll fail.
	require.NoError(t, os.WriteFile(filepath.Join(root, ".temp"), []byte("x"), 0o644))

	result, err := Check(root, DefaultOptions(), time.Now(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.SaveError)
	assert.Empty(t, result.SavedTo)
}

func writeManifest(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(content), 0o644))
}

func TestEvaluate_WritesNothing(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"templateVersion":"1.1.0"}`)

	result, err := Evaluate(root, DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.1.1", "1.2.0"}, versions(result.Updates))
	assert.NoDirExists(t, filepath.Join(root, ".temp"))
}
