package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/urlmap/internal/config"
	"github.com/specialistvlad/urlmap/internal/ctxlog"
)

// Loader is the HCL implementation of config.FileLoader.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.FileLoader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// LoadFile parses a single HCL file into the config model.
func (l *Loader) LoadFile(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL namespace file.", "file", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	return l.decode(ctx, file.Body, path)
}

// LoadSource parses HCL from memory; filename is used in diagnostics only.
func (l *Loader) LoadSource(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, file.Body, filename)
}

func (l *Loader) decode(ctx context.Context, body hcl.Body, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	locals, err := evalLocals(root.Locals)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate locals in %s: %w", path, err)
	}
	logger.Debug("Evaluated locals.", "file", path, "count", len(locals))
	evalCtx := newEvalContext(locals)

	model := &config.Model{}
	for _, ns := range root.Namespaces {
		def, err := translateNamespace(ns, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate namespace %q in %s: %w", ns.Name, path, err)
		}
		model.Namespaces = append(model.Namespaces, def)
	}

	logger.Debug("HCL loading complete.", "file", path, "namespaces", len(model.Namespaces))
	return model, nil
}

// translateNamespace converts a decoded namespace block into the agnostic model.
func translateNamespace(ns *namespaceBlock, evalCtx *hcl.EvalContext) (*config.NamespaceDefinition, error) {
	content, diags := ns.Body.Content(namespaceSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	urlAttr := content.Attributes["url"]
	url, ok, err := evalString(urlAttr.Expr, evalCtx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s: url cannot be null", urlAttr.Expr.Range())
	}

	var description string
	if attr, exists := content.Attributes["description"]; exists {
		description, _, err = evalString(attr.Expr, evalCtx)
		if err != nil {
			return nil, err
		}
	}

	rng := urlAttr.Expr.Range()
	return &config.NamespaceDefinition{
		Name:        ns.Name,
		URL:         url,
		Description: description,
		Source:      fmt.Sprintf("%s:%d", rng.Filename, rng.Start.Line),
	}, nil
}
