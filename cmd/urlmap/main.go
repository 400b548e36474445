package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/urlmap/internal/app"
	"github.com/specialistvlad/urlmap/internal/cli"
	"github.com/specialistvlad/urlmap/internal/config"
	"github.com/specialistvlad/urlmap/internal/hcl"
	"github.com/specialistvlad/urlmap/internal/urlmapjs"
	"github.com/specialistvlad/urlmap/internal/yamlconf"
)

// main is the entrypoint for the urlmap tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(inR io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := config.NewMultiLoader(hcl.NewLoader(), yamlconf.NewLoader(), urlmapjs.NewLoader())
	urlmapApp, err := app.NewApp(app.Streams{In: inR, Out: outW, Err: errW}, appConfig, loader)
	if err != nil {
		return err
	}

	return urlmapApp.Run(context.Background())
}
