package urlmapjs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/specialistvlad/urlmap/internal/ctxlog"
	"github.com/specialistvlad/urlmap/internal/registry"
)

const header = "// A map between namespaces and base URLs for their online documentation"

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\t", `\t`)

// Write renders entries in the canonical urlmap.js layout.
func Write(w io.Writer, entries []registry.Entry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, header)
	fmt.Fprintf(bw, "%s = [\n", VariableName)
	for _, e := range entries {
		fmt.Fprintf(bw, "    [ '%s', '%s' ],\n", quoteReplacer.Replace(e.Namespace), quoteReplacer.Replace(e.URL))
	}
	fmt.Fprintln(bw, "]")
	return bw.Flush()
}

// WriteFile writes entries to path atomically: readers see either the old
// file or the complete new one.
func WriteFile(ctx context.Context, path string, entries []registry.Entry) error {
	logger := ctxlog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending urlmap file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug("cleanup pending urlmap file", "error", err)
		}
	}()

	if err := Write(pendingFile, entries); err != nil {
		return fmt.Errorf("write urlmap data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace urlmap file: %w", err)
	}

	logger.Debug("Wrote urlmap file.", "path", path, "namespaces", len(entries))
	return nil
}
