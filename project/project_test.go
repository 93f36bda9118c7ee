package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeProjectFile(t, `
name: jaffle_shop
version: "1.0.0"
profile: jaffle_shop
target-path: out
models:
  jaffle_shop:
    +materialized: table
`)

	p, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "jaffle_shop", p.Name)
	assert.Equal(t, "1.0.0", p.Version)
	assert.Equal(t, "jaffle_shop", p.Profile)
	assert.Equal(t, "out", p.TargetPath)
}

func TestLoadDefaultTargetPath(t *testing.T) {
	dir := writeProjectFile(t, "name: jaffle_shop\n")

	p, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultTargetPath, p.TargetPath)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := writeProjectFile(t, "name: [unclosed\n")
	_, err := Load(dir)
	require.Error(t, err)
}

func TestRunArtifacts(t *testing.T) {
	p := &Project{TargetPath: "target"}

	assert.Equal(t, []string{
		filepath.Join("target", "manifest.json"),
		filepath.Join("target", "run_results.json"),
		filepath.Join("target", "sources.json"),
		filepath.Join("target", "catalog.json"),
	}, p.RunArtifacts())
}
