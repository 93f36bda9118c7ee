package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix of environment variables holding connection URIs.
// The connection id is the lowercased remainder, e.g. DBTFLOW_CONN_DEST_S3
// registers connection "dest_s3".
const EnvPrefix = "DBTFLOW_CONN_"

// Connection is an opaque credential record behind a connection identifier.
// The URI carries the location; Login and Password are split out of the
// userinfo component when present.
type Connection struct {
	ID       string
	URI      string
	Login    string
	Password string
}

// ParseConnection builds a Connection from an id and a URI string, extracting
// userinfo credentials when the URI carries them.
func ParseConnection(id, uri string) (Connection, error) {
	conn := Connection{ID: id, URI: uri}
	if !strings.Contains(uri, "://") {
		return conn, nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return Connection{}, fmt.Errorf("connection %s: %w", id, err)
	}
	if u.User != nil {
		conn.Login = u.User.Username()
		conn.Password, _ = u.User.Password()
		u.User = nil
		conn.URI = u.String()
	}
	return conn, nil
}

// Registry holds named connections. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]Connection
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]Connection)}
}

// Register adds (or replaces) a connection.
func (r *Registry) Register(conn Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[conn.ID] = conn
}

// Get returns the connection for id, or an error naming the missing id.
func (r *Registry) Get(id string) (Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.conns[id]
	if !ok {
		return Connection{}, fmt.Errorf("connection %q is not defined", id)
	}
	return conn, nil
}

// LoadEnv scans the process environment for EnvPrefix variables and registers
// a connection per match. Malformed URIs abort the scan.
func (r *Registry) LoadEnv() error {
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		id := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if id == "" {
			continue
		}
		conn, err := ParseConnection(id, value)
		if err != nil {
			return err
		}
		r.Register(conn)
	}
	return nil
}

// LoadDotenv loads the given .env files into the process environment (without
// overriding variables already set) and then registers any connections found.
func (r *Registry) LoadDotenv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return r.LoadEnv()
}
