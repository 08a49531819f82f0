package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Category prefixes follow the asset naming convention used by the
// public site: elevation renders are "elevation_*", floor plans are
// "plan_*", everything else (brochures) carries no prefix.
const (
	CategoryElevation = "elevation"
	CategoryPlan      = "plan"
)

var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
}

const defaultMIME = "application/octet-stream"

// Asset describes a resolvable file in the catalog.
type Asset struct {
	Name        string
	Path        string
	ContentType string
	Size        int64
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// List enumerates the assets directory, optionally filtered by
	// category prefix. An unknown or empty category returns everything.
	List(category string) ([]string, error)

	// Open resolves a filename against the assets directory and opens
	// it for streaming. Names escaping the directory are treated as
	// absent.
	Open(name string) (io.ReadCloser, Asset, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type catalogService struct {
	dir string
}

func New(dir string) Service {
	return &catalogService{dir: dir}
}

func (s *catalogService) List(category string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumerate, err)
	}

	prefix := ""
	switch category {
	case CategoryElevation:
		prefix = "elevation_"
	case CategoryPlan:
		prefix = "plan_"
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if prefix != "" && !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (s *catalogService) Open(name string) (io.ReadCloser, Asset, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, Asset{}, err
	}

	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return nil, Asset{}, ErrNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, Asset{}, ErrNotFound
	}

	return f, Asset{
		Name:        name,
		Path:        path,
		ContentType: ContentTypeFor(name),
		Size:        fi.Size(),
	}, nil
}

// resolve rejects any name that would escape the assets directory.
// The request path segment is attacker-controlled.
func (s *catalogService) resolve(name string) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", ErrNotFound
	}

	base, err := filepath.Abs(s.dir)
	if err != nil {
		return "", ErrNotFound
	}
	path := filepath.Join(base, name)
	if !strings.HasPrefix(path, base+string(filepath.Separator)) {
		return "", ErrNotFound
	}
	return path, nil
}

// ContentTypeFor maps a filename extension to its declared MIME type.
// Unknown extensions fall back to an opaque binary stream.
func ContentTypeFor(name string) string {
	if mt, ok := mimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	return defaultMIME
}
