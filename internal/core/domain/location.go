package domain

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// FileLocation identifies a place on the local filesystem.
// It is either a plain path or a file:// URL.
type FileLocation string

// String returns the location as given.
func (l FileLocation) String() string {
	return string(l)
}

// IsEmpty returns true if no location was supplied.
// A cancelled file-selection dialog yields an empty location.
func (l FileLocation) IsEmpty() bool {
	return strings.TrimSpace(string(l)) == ""
}

// LocalPath resolves the location to a path on the local filesystem.
//
// Bare paths pass through unchanged. file:// URLs are percent-decoded,
// and a "localhost" host is dropped. Any other scheme is rejected with
// ErrUnsupportedScheme.
func (l FileLocation) LocalPath() (string, error) {
	raw := string(l)
	if l.IsEmpty() {
		return "", ErrEmptyLocation
	}

	scheme, _, ok := strings.Cut(raw, ":")
	// A single letter before the colon is a Windows drive, not a scheme.
	if !ok || len(scheme) < 2 || !isScheme(scheme) {
		return raw, nil
	}

	if !strings.EqualFold(scheme, "file") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, strings.ToLower(scheme))
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p := u.Path
	if p == "" {
		// file:relative/path keeps its path in Opaque.
		p = u.Opaque
	}
	if p == "" {
		return "", ErrEmptyLocation
	}

	// file:///C:/dir/file.json
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}

	if u.Host != "" && !strings.EqualFold(u.Host, "localhost") {
		p = "//" + u.Host + p
	}

	return filepath.FromSlash(p), nil
}

// FileURL converts a local path to a file:// URL.
// Relative paths are made absolute first; if that fails the path is used as is.
func FileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// isScheme reports whether s is a syntactically valid URL scheme.
func isScheme(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
