package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/urlmap/internal/ctxlog"
	"github.com/specialistvlad/urlmap/internal/fsutil"
)

// MultiLoader dispatches files to FileLoaders by extension.
type MultiLoader struct {
	loaders []FileLoader
}

// NewMultiLoader creates a Loader over the given format loaders. When two
// loaders claim the same extension the first one wins.
func NewMultiLoader(loaders ...FileLoader) *MultiLoader {
	return &MultiLoader{loaders: loaders}
}

// Load reads every path in order. A file is handed to the loader owning its
// extension; a directory is walked recursively for any known extension. A file
// reached through more than one path is loaded once.
func (m *MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &Model{}
	seen := make(map[string]struct{})

	for _, path := range paths {
		files, err := m.expand(path)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			logger.Warn("No configuration files found in path", "path", path, "extensions", m.extensions())
			continue
		}
		logger.Debug("Found configuration files to load", "path", path, "files", files)

		for _, file := range files {
			key := fileKey(file)
			if _, wasSeen := seen[key]; wasSeen {
				logger.Debug("Skipping already loaded file", "file", file)
				continue
			}
			seen[key] = struct{}{}

			loader := m.loaderFor(file)
			if loader == nil {
				return nil, fmt.Errorf("no loader for file %s (supported: %v)", file, m.extensions())
			}
			fileModel, err := loader.LoadFile(ctx, file)
			if err != nil {
				return nil, err
			}
			logger.Debug("Loaded configuration file", "file", file, "namespaces", len(fileModel.Namespaces))
			model.Merge(fileModel)
		}
	}

	return model, nil
}

func (m *MultiLoader) expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	if len(m.loaders) == 0 {
		return nil, fmt.Errorf("cannot walk %s: no loaders configured", path)
	}
	files, err := fsutil.FindFilesByExtension(path, m.extensions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to walk configuration directory %s: %w", path, err)
	}
	return files, nil
}

// fileKey identifies a file independently of how its path was spelled.
func fileKey(file string) string {
	if abs, err := filepath.Abs(file); err == nil {
		return abs
	}
	return filepath.Clean(file)
}

func (m *MultiLoader) loaderFor(file string) FileLoader {
	for _, l := range m.loaders {
		if fsutil.HasExtension(file, l.Extensions()...) {
			return l
		}
	}
	return nil
}

func (m *MultiLoader) extensions() []string {
	var exts []string
	for _, l := range m.loaders {
		exts = append(exts, l.Extensions()...)
	}
	return exts
}
