// Package yamlconf loads namespace tables written in YAML.
//
//	namespaces:
//	  - name: GLib
//	    url: https://docs.gtk.org/glib/
//	    description: Low-level core library
package yamlconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/urlmap/internal/config"
	"github.com/specialistvlad/urlmap/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// document is the top-level layout. Entries stay as nodes so their line
// numbers survive decoding.
type document struct {
	Namespaces []yaml.Node `yaml:"namespaces"`
}

type namespaceEntry struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

var knownEntryFields = map[string]struct{}{
	"name":        {},
	"url":         {},
	"description": {},
}

// Loader is the YAML implementation of config.FileLoader.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.FileLoader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// LoadFile reads and parses a YAML namespace file.
func (l *Loader) LoadFile(ctx context.Context, path string) (*config.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}
	return l.Parse(ctx, data, path)
}

// Parse decodes YAML data; filename is used in diagnostics only.
func (l *Loader) Parse(ctx context.Context, data []byte, filename string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading YAML namespace file.", "file", filename)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			logger.Debug("YAML file is empty.", "file", filename)
			return &config.Model{}, nil
		}
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
	}

	model := &config.Model{}
	for i := range doc.Namespaces {
		def, err := translateEntry(&doc.Namespaces[i], filename)
		if err != nil {
			return nil, err
		}
		model.Namespaces = append(model.Namespaces, def)
	}

	logger.Debug("YAML loading complete.", "file", filename, "namespaces", len(model.Namespaces))
	return model, nil
}

func translateEntry(node *yaml.Node, filename string) (*config.NamespaceDefinition, error) {
	source := fmt.Sprintf("%s:%d", filename, node.Line)
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: namespace entry must be a mapping", source)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if _, ok := knownEntryFields[key.Value]; !ok {
			return nil, fmt.Errorf("%s:%d: field %q not found in namespace entry", filename, key.Line, key.Value)
		}
	}

	var entry namespaceEntry
	if err := node.Decode(&entry); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if entry.Name == "" {
		return nil, fmt.Errorf("%s: namespace entry is missing 'name'", source)
	}
	if entry.URL == "" {
		return nil, fmt.Errorf("%s: namespace %q is missing 'url'", source, entry.Name)
	}

	return &config.NamespaceDefinition{
		Name:        entry.Name,
		URL:         entry.URL,
		Description: entry.Description,
		Source:      source,
	}, nil
}
