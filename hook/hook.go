package hook

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hupe1980/dbtflow/core"
	"github.com/hupe1980/dbtflow/logging"
	"github.com/hupe1980/dbtflow/project"
	"github.com/hupe1980/dbtflow/remote"
)

// Options holds dependency overrides passed to New().
type Options struct {
	// Logger receives upload progress and missing-artifact warnings.
	Logger logging.Logger
}

// Hook performs uploads of dbt project files and run artifacts through an
// injected storage resolver. Methods are single-pass and sequential; a
// partial upload leaves already transferred files in place.
type Hook struct {
	resolver core.StorageResolver
	logger   logging.Logger
}

// New constructs a Hook with optional overrides. Logging defaults to the
// NoOp logger.
func New(resolver core.StorageResolver, optFns ...func(o *Options)) *Hook {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Hook{
		resolver: resolver,
		logger:   opts.Logger,
	}
}

// UploadArtifacts uploads the listed artifacts from projectDir to
// destination, preserving each artifact's relative path at the destination.
// Artifacts are attempted in input order; a path that does not resolve to a
// regular file under projectDir is skipped with a single warning and does not
// abort the loop. Duplicate entries are processed independently, one upload
// attempt per occurrence.
//
// The storage handle is resolved once before the loop, so an unreachable
// destination or unknown connID fails the call before any upload happens.
// Resolver and transport errors are returned unchanged.
func (h *Hook) UploadArtifacts(ctx context.Context, projectDir, destination, connID string, artifacts []string) error {
	handle, err := h.resolver.Resolve(ctx, destination, connID)
	if err != nil {
		return err
	}
	dest, err := remote.Parse(destination)
	if err != nil {
		return fmt.Errorf("parse destination %s: %w", destination, err)
	}

	h.logger.Info("uploading artifacts", "project_dir", projectDir, "destination", destination, "count", len(artifacts))

	for _, rel := range artifacts {
		localPath := filepath.Join(projectDir, rel)
		info, statErr := os.Stat(localPath)
		if statErr != nil || !info.Mode().IsRegular() {
			h.logger.Warn(fmt.Sprintf("artifact %s not found, skipping upload", localPath))
			continue
		}
		remotePath := dest.Join(filepath.ToSlash(rel)).String()
		if err := handle.Upload(ctx, localPath, remotePath); err != nil {
			return err
		}
		h.logger.Debug("uploaded artifact", "local", localPath, "remote", remotePath)
	}
	return nil
}

// UploadProject uploads every regular file under projectDir to destination,
// preserving the directory structure. Used when no artifact selection is
// configured on the task.
func (h *Hook) UploadProject(ctx context.Context, projectDir, destination, connID string) error {
	handle, err := h.resolver.Resolve(ctx, destination, connID)
	if err != nil {
		return err
	}
	dest, err := remote.Parse(destination)
	if err != nil {
		return fmt.Errorf("parse destination %s: %w", destination, err)
	}

	h.logger.Info("uploading project", "project_dir", projectDir, "destination", destination)

	return filepath.WalkDir(projectDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(projectDir, path)
		if err != nil {
			return err
		}
		remotePath := dest.Join(filepath.ToSlash(rel)).String()
		if err := handle.Upload(ctx, path, remotePath); err != nil {
			return err
		}
		h.logger.Debug("uploaded file", "local", path, "remote", remotePath)
		return nil
	})
}

// UploadRunArtifacts reads the project file under projectDir to locate the
// target path and selectively uploads the standard run artifacts found
// there. Artifacts the last command did not produce are skipped with the
// usual warning.
func (h *Hook) UploadRunArtifacts(ctx context.Context, projectDir, destination, connID string) error {
	p, err := project.Load(projectDir)
	if err != nil {
		return err
	}
	return h.UploadArtifacts(ctx, projectDir, destination, connID, p.RunArtifacts())
}
