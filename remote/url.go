// Package remote provides a small URL type for addressing upload
// destinations. A destination is either a URI (e.g. "s3://bucket/prefix")
// or a plain filesystem path; URL normalizes joining relative artifact
// paths onto either form so the relative structure of a project is
// preserved at the destination.
package remote

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// URL is a parsed destination location. The zero value is an empty local
// path.
type URL struct {
	// Scheme is empty for plain filesystem paths.
	Scheme string
	// Host is the authority component (e.g. a bucket name); empty for
	// filesystem paths.
	Host string
	// Path is the path component, or the whole input for filesystem paths.
	Path string
}

// Parse interprets s as a URI when it carries a scheme, and as a filesystem
// path otherwise. Parsing a filesystem path never fails.
func Parse(s string) (URL, error) {
	if !strings.Contains(s, "://") {
		return URL{Path: s}, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return URL{}, err
	}
	return URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path}, nil
}

// IsLocal reports whether the URL addresses the local filesystem.
func (u URL) IsLocal() bool {
	return u.Scheme == "" || u.Scheme == "file"
}

// Join returns a copy of u with the given relative elements appended to its
// path. Elements always use forward slashes on remote URLs; local paths use
// the platform separator.
func (u URL) Join(elem ...string) URL {
	if u.Scheme == "" {
		u.Path = filepath.Join(append([]string{u.Path}, elem...)...)
		return u
	}
	u.Path = path.Join(append([]string{u.Path}, elem...)...)
	return u
}

// String reassembles the destination into its original form.
func (u URL) String() string {
	if u.Scheme == "" {
		return u.Path
	}
	p := u.Path
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return u.Scheme + "://" + u.Host + p
}
