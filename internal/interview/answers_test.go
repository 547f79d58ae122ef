package interview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/nextkit/internal/output"
)

func TestDefaults_Valid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestAnswers_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Answers)
	}{
		{"empty name", func(a *Answers) { a.ProjectName = "" }},
		{"unknown type", func(a *Answers) { a.ProjectType = "hobby" }},
		{"unknown feature", func(a *Answers) { a.Features = []string{"auth", "blockchain"} }},
		{"unknown priority", func(a *Answers) { a.Priority = "fun" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Defaults()
			tt.mutate(&a)
			assert.Error(t, a.Validate())
		})
	}
}

func TestAnswers_Features(t *testing.T) {
	a := Defaults()
	a.Features = []string{"auth", "seo"}
	assert.True(t, a.HasFeature("seo"))
	assert.False(t, a.HasFeature("i18n"))
	assert.Equal(t, "auth, seo", a.FeatureList())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: shop
type: agency
features: [payments, email]
include_docker: true
`), 0o644))

	a, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "shop", a.ProjectName)
	assert.Equal(t, "agency", a.ProjectType)
	assert.Equal(t, []string{"payments", "email"}, a.Features)
	assert.True(t, a.IncludeDocker)
	assert.True(t, a.IncludeTests, "omitted fields keep defaults")
	assert.Equal(t, "speed", a.Priority)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, output.ExitIssues, output.GetExitCode(err))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("priority: fun\n"), 0o644))
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority")
}
