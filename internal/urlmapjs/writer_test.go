package urlmapjs

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/urlmap/internal/ctxlog"
	"github.com/specialistvlad/urlmap/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gtkEntries = []registry.Entry{
	{Namespace: "GLib", URL: "https://docs.gtk.org/glib/"},
	{Namespace: "GObject", URL: "https://docs.gtk.org/gobject/"},
	{Namespace: "Gio", URL: "https://docs.gtk.org/gio/"},
	{Namespace: "Gtk", URL: "https://docs.gtk.org/gtk3/"},
}

func TestWrite_CanonicalLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, gtkEntries))

	if diff := cmp.Diff(gtkURLMap, buf.String()); diff != "" {
		t.Errorf("Write() mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_EscapesAndParsesBack(t *testing.T) {
	entries := []registry.Entry{
		{Namespace: "Odd", URL: `https://example.org/it's/a\b/`},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, entries))
	assert.Contains(t, buf.String(), `'https://example.org/it\'s/a\\b/'`)

	model, err := Parse(&buf, "out.js")
	require.NoError(t, err)
	require.Len(t, model.Namespaces, 1)
	assert.Equal(t, entries[0].URL, model.Namespaces[0].URL)
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, header+"\nbaseURLs = [\n]\n", buf.String())

	model, err := Parse(&buf, "empty.js")
	require.NoError(t, err)
	assert.Empty(t, model.Namespaces)
}

func TestWriteFile_ReplacesAtomically(t *testing.T) {
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	path := filepath.Join(t.TempDir(), "urlmap.js")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteFile(ctx, path, gtkEntries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(gtkURLMap, string(data)); diff != "" {
		t.Errorf("WriteFile() mismatch (-want +got):\n%s", diff)
	}

	model, err := NewLoader().LoadFile(ctx, path)
	require.NoError(t, err)
	assert.Len(t, model.Namespaces, len(gtkEntries))

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".urlmap.js*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "pending files must not be left behind")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := WriteFile(ctx, filepath.Join(t.TempDir(), "missing", "urlmap.js"), gtkEntries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create pending urlmap file")
}

func TestLoader_Extensions(t *testing.T) {
	assert.Equal(t, []string{".js"}, NewLoader().Extensions())
}
