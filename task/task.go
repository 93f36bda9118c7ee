package task

import (
	"context"

	"github.com/hupe1980/dbtflow/hook"
)

// Options holds the optional upload configuration passed to New().
type Options struct {
	// ProjectConnID names the connection used to access the project
	// location when it is remote.
	ProjectConnID string
	// UploadProject enables uploading after the run. When false the task
	// performs no upload regardless of the other settings.
	UploadProject bool
	// UploadDestination is an alternative destination for the upload. When
	// empty, uploads go back to the project location.
	UploadDestination string
	// DestinationConnID names the connection for UploadDestination. Only
	// meaningful when a distinct destination is set.
	DestinationConnID string
	// Artifacts selects specific files (relative to the project root) to
	// upload. When empty the whole project tree is uploaded.
	Artifacts []string
}

// Task carries the configuration for one dbt invocation. Fields are set at
// construction and read-only thereafter.
type Task struct {
	TaskID     string
	ProjectDir string

	ProjectConnID     string
	UploadProject     bool
	UploadDestination string
	DestinationConnID string
	Artifacts         []string
}

// New constructs a Task for the given id and project location. Optional
// upload settings are supplied via option functions; none of them are
// validated here.
func New(taskID, projectDir string, optFns ...func(o *Options)) *Task {
	opts := Options{}

	for _, fn := range optFns {
		fn(&opts)
	}

	t := &Task{
		TaskID:            taskID,
		ProjectDir:        projectDir,
		ProjectConnID:     opts.ProjectConnID,
		UploadProject:     opts.UploadProject,
		UploadDestination: opts.UploadDestination,
		DestinationConnID: opts.DestinationConnID,
	}
	if opts.Artifacts != nil {
		t.Artifacts = make([]string, len(opts.Artifacts))
		copy(t.Artifacts, opts.Artifacts)
	}
	return t
}

// Destination returns the effective upload location and connection id: the
// configured destination when set, the project location otherwise.
func (t *Task) Destination() (location, connID string) {
	if t.UploadDestination != "" {
		return t.UploadDestination, t.DestinationConnID
	}
	return t.ProjectDir, t.ProjectConnID
}

// Execute performs the task's upload step through h. With an artifact
// selection it uploads exactly those files; otherwise the whole project
// tree. A nil return with UploadProject unset means the task had nothing to
// do.
func (t *Task) Execute(ctx context.Context, h *hook.Hook) error {
	if !t.UploadProject {
		return nil
	}
	location, connID := t.Destination()
	if len(t.Artifacts) > 0 {
		return h.UploadArtifacts(ctx, t.ProjectDir, location, connID, t.Artifacts)
	}
	return h.UploadProject(ctx, t.ProjectDir, location, connID)
}
