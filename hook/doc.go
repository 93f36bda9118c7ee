// Package hook implements the upload side of running dbt under an
// orchestrator. A Hook bundles the injected collaborators (structured logger,
// storage resolver) and exposes the upload operations the task layer invokes
// after a run: selective artifact upload, whole-project upload, and run
// artifact upload driven by the project file.
//
// The hook owns no storage clients and no credentials; both arrive through
// the core.StorageResolver it was constructed with. Missing artifacts are a
// warning, never a failure. Resolver and transport errors propagate to the
// caller unchanged.
package hook
