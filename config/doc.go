// Package config resolves connection identifiers into storage access.
//
// A Connection is an opaque credential record (URI plus optional login
// details) registered under a short identifier, mirroring how workflow
// schedulers keep authentication out of pipeline definitions. The Registry
// holds connections registered programmatically or discovered from the
// environment (DBTFLOW_CONN_<ID> variables, optionally loaded from a .env
// file via godotenv).
//
// Resolver implements core.StorageResolver on top of a Registry, dispatching
// on the destination URI scheme to a concrete storage backend.
package config
