// Package dbtflow provides a high-level façade over the upload hook and
// connection resolution, enabling a pipeline to run the post-dbt upload step
// with minimal wiring. Most applications interact with this package by:
//  1. Creating a DbtFlow via New() (optionally overriding resolver/logger)
//  2. Building task.Task values from their pipeline definitions
//  3. Executing them with Run()
//
// The façade delegates the actual uploading to hook.Hook while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production deployments typically register connections from the
// environment and supply a structured logger.
package dbtflow

import (
	"context"

	"github.com/google/uuid"

	"github.com/hupe1980/dbtflow/config"
	"github.com/hupe1980/dbtflow/core"
	"github.com/hupe1980/dbtflow/hook"
	"github.com/hupe1980/dbtflow/logging"
	"github.com/hupe1980/dbtflow/task"
)

// Options configures the DbtFlow instance.
type Options struct {
	// Registry supplies connection records. Defaults to a registry populated
	// from DBTFLOW_CONN_* environment variables.
	Registry *config.Registry

	// Resolver overrides the storage resolution step entirely. When set,
	// Registry is ignored.
	Resolver core.StorageResolver

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// DbtFlow is the high-level façade aggregating the upload hook and its
// collaborators.
type DbtFlow struct {
	hook   *hook.Hook
	logger logging.Logger
}

// New creates a DbtFlow instance with optional overrides. Without a custom
// resolver, connections are read from the environment and destinations are
// dispatched by URI scheme.
func New(optFns ...func(o *Options)) (*DbtFlow, error) {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	resolver := opts.Resolver
	if resolver == nil {
		registry := opts.Registry
		if registry == nil {
			registry = config.NewRegistry()
			if err := registry.LoadEnv(); err != nil {
				return nil, err
			}
		}
		resolver = config.NewResolver(registry)
	}

	h := hook.New(resolver, func(o *hook.Options) {
		o.Logger = opts.Logger
	})

	return &DbtFlow{hook: h, logger: opts.Logger}, nil
}

// Hook exposes the underlying upload hook for callers that need the
// individual upload operations.
func (f *DbtFlow) Hook() *hook.Hook {
	return f.hook
}

// Run executes the task's upload step. Each run gets a fresh run id carried
// in the log records, returned alongside any execution error.
func (f *DbtFlow) Run(ctx context.Context, t *task.Task) (string, error) {
	runID := uuid.NewString()
	f.logger.Info("executing task", "task_id", t.TaskID, "run_id", runID)

	if err := t.Execute(ctx, f.hook); err != nil {
		f.logger.Error("task failed", "task_id", t.TaskID, "run_id", runID, "error", err)
		return runID, err
	}

	f.logger.Info("task completed", "task_id", t.TaskID, "run_id", runID)
	return runID, nil
}
