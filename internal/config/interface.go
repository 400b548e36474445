package config

import "context"

// Loader reads configuration from files or directories and translates it into
// the format-agnostic model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// FileLoader is implemented by format-specific loaders that handle a single
// file at a time.
type FileLoader interface {
	// Extensions lists the file suffixes handled by this loader, e.g. ".hcl".
	Extensions() []string
	LoadFile(ctx context.Context, path string) (*Model, error)
}
