// Package task defines the parameter carrier a pipeline definition
// constructs for each dbt invocation. A Task stores the user-supplied upload
// configuration verbatim (project location, connection ids, destination,
// artifact selection, upload flag) and performs no validation of its own; an
// artifact list may freely name files that do not exist yet, since artifacts
// are resolved only at execution time. Execution delegates to a hook.Hook.
package task
