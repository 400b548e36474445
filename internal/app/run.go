package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/urlmap/internal/ctxlog"
	"github.com/specialistvlad/urlmap/internal/urlmapjs"
	"github.com/specialistvlad/urlmap/internal/xref"
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command, "args", a.config.Args)

	var err error
	switch a.config.Command {
	case CommandResolve:
		err = a.resolve(a.config.Args)
	case CommandList:
		err = a.list()
	case CommandLink:
		err = a.link(a.config.Args)
	case CommandExpand:
		err = a.expand(a.config.Args[0])
	case CommandExport:
		err = a.export(ctx, a.config.Args[0])
	case CommandCheck:
		err = a.check()
	default:
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

func (a *App) resolve(namespaces []string) error {
	for _, ns := range namespaces {
		url, err := a.registry.Resolve(ns)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.streams.Out, url)
	}
	return nil
}

func (a *App) list() error {
	for _, e := range a.registry.Entries() {
		if e.Description == "" {
			fmt.Fprintf(a.streams.Out, "%s\t%s\n", e.Namespace, e.URL)
			continue
		}
		fmt.Fprintf(a.streams.Out, "%s\t%s\t%s\n", e.Namespace, e.URL, e.Description)
	}
	return nil
}

func (a *App) link(refs []string) error {
	for _, raw := range refs {
		url, err := xref.LinkString(a.registry, raw)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.streams.Out, url)
	}
	return nil
}

func (a *App) expand(path string) error {
	var src []byte
	var err error
	if path == "-" {
		src, err = io.ReadAll(a.streams.In)
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	out, errs := xref.Expand(string(src), a.registry)
	if _, err := io.WriteString(a.streams.Out, out); err != nil {
		return err
	}
	for _, refErr := range errs {
		a.logger.Warn("Reference left unexpanded.", "file", path, "error", refErr)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d reference(s) in %s could not be expanded", len(errs), path)
	}
	return nil
}

func (a *App) export(ctx context.Context, path string) error {
	entries := a.registry.Entries()
	if path == "-" {
		return urlmapjs.Write(a.streams.Out, entries)
	}
	if err := urlmapjs.WriteFile(ctx, path, entries); err != nil {
		return err
	}
	a.logger.Info("Exported urlmap.", "path", path, "namespaces", len(entries))
	return nil
}

func (a *App) check() error {
	fmt.Fprintf(a.streams.Out, "OK: %d namespace(s) loaded from %s\n",
		a.registry.Len(), strings.Join(a.config.ConfigPaths, ", "))
	return nil
}
