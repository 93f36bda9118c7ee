// Package project reads the dbt project file (dbt_project.yml) to discover
// where a run leaves its output artifacts. Only the handful of keys the
// upload layer cares about are decoded; unknown keys are ignored.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the canonical dbt project file name.
const FileName = "dbt_project.yml"

// DefaultTargetPath is where dbt writes run artifacts when the project file
// does not override target-path.
const DefaultTargetPath = "target"

// Project is the subset of dbt_project.yml the upload layer consumes.
type Project struct {
	Name       string `yaml:"name"`
	Version    string `yaml:"version"`
	Profile    string `yaml:"profile"`
	TargetPath string `yaml:"target-path"`
}

// Load reads and decodes dir/dbt_project.yml.
func Load(dir string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	if p.TargetPath == "" {
		p.TargetPath = DefaultTargetPath
	}
	return &p, nil
}

// RunArtifacts returns the standard artifact paths a dbt run produces,
// relative to the project root. Not all of them exist after every command;
// callers are expected to tolerate missing entries.
func (p *Project) RunArtifacts() []string {
	return []string{
		filepath.Join(p.TargetPath, "manifest.json"),
		filepath.Join(p.TargetPath, "run_results.json"),
		filepath.Join(p.TargetPath, "sources.json"),
		filepath.Join(p.TargetPath, "catalog.json"),
	}
}
