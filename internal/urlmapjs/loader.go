package urlmapjs

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/urlmap/internal/config"
	"github.com/specialistvlad/urlmap/internal/ctxlog"
)

// Loader is the urlmap.js implementation of config.FileLoader.
type Loader struct{}

// NewLoader creates a new urlmap.js loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.FileLoader.
func (l *Loader) Extensions() []string {
	return []string{".js"}
}

// LoadFile parses a urlmap.js file.
func (l *Loader) LoadFile(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading urlmap.js file.", "file", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open urlmap file: %w", err)
	}
	defer f.Close()

	model, err := Parse(f, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("urlmap.js loading complete.", "file", path, "namespaces", len(model.Namespaces))
	return model, nil
}
