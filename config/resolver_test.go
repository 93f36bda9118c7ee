package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dbtflow/core"
	"github.com/hupe1980/dbtflow/storage"
)

func TestResolverLocalSchemes(t *testing.T) {
	r := NewResolver(nil)

	for _, location := range []string{"/var/backup", "file:///var/backup"} {
		handle, err := r.Resolve(context.Background(), location, "")
		require.NoError(t, err, location)
		assert.IsType(t, &storage.LocalStore{}, handle)
	}
}

func TestResolverMemoryScheme(t *testing.T) {
	r := NewResolver(nil)

	handle, err := r.Resolve(context.Background(), "mem://bucket/artifacts", "")
	require.NoError(t, err)
	assert.Same(t, r.Memory(), handle)
}

func TestResolverUnsupportedScheme(t *testing.T) {
	r := NewResolver(nil)

	_, err := r.Resolve(context.Background(), "gs://bucket/artifacts", "")
	require.ErrorIs(t, err, storage.ErrUnsupportedScheme)
}

func TestResolverRegisteredSchemeWins(t *testing.T) {
	r := NewResolver(nil)
	custom := storage.NewMemoryStore()
	r.RegisterScheme("s3", custom)

	handle, err := r.Resolve(context.Background(), "s3://bucket/artifacts", "")
	require.NoError(t, err)
	assert.Same(t, core.StorageHandle(custom), handle)
}

func TestResolverUnknownConnID(t *testing.T) {
	r := NewResolver(NewRegistry())

	// A bad conn id fails even for schemes that need no credentials.
	_, err := r.Resolve(context.Background(), "/var/backup", "dest_conn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dest_conn")
	assert.False(t, errors.Is(err, storage.ErrUnsupportedScheme))
}

func TestResolverKnownConnID(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Connection{ID: "dest_conn", URI: "file:///var/backup"})
	r := NewResolver(registry)

	handle, err := r.Resolve(context.Background(), "file:///var/backup", "dest_conn")
	require.NoError(t, err)
	assert.NotNil(t, handle)
}
