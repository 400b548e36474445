package yamlconf

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/urlmap/internal/config"
	"github.com/specialistvlad/urlmap/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urlmap.yaml")
	src := `# External documentation
namespaces:
  - name: GLib
    url: https://docs.gtk.org/glib/
    description: Low-level core library
  - name: Gio
    url: "https://docs.gtk.org/gio/"
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	model, err := NewLoader().LoadFile(testContext(), path)
	require.NoError(t, err)

	assert.Equal(t, []*config.NamespaceDefinition{
		{Name: "GLib", URL: "https://docs.gtk.org/glib/", Description: "Low-level core library", Source: path + ":3"},
		{Name: "Gio", URL: "https://docs.gtk.org/gio/", Source: path + ":6"},
	}, model.Namespaces)
}

func TestParse_Empty(t *testing.T) {
	for _, src := range []string{"", "# only a comment\n", "namespaces: []\n"} {
		model, err := NewLoader().Parse(testContext(), []byte(src), "empty.yaml")
		require.NoError(t, err, "source %q", src)
		assert.Empty(t, model.Namespaces)
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		src         string
		errContains string
	}{
		{
			name:        "invalid yaml",
			src:         "namespaces: [",
			errContains: "failed to parse YAML file",
		},
		{
			name:        "unknown top-level field",
			src:         "entries: []\n",
			errContains: "failed to parse YAML file",
		},
		{
			name:        "unknown entry field",
			src:         "namespaces:\n  - name: GLib\n    link: https://docs.gtk.org/glib/\n",
			errContains: `bad.yaml:3: field "link" not found`,
		},
		{
			name:        "entry is a scalar",
			src:         "namespaces:\n  - GLib\n",
			errContains: "bad.yaml:2: namespace entry must be a mapping",
		},
		{
			name:        "missing name",
			src:         "namespaces:\n  - url: https://docs.gtk.org/glib/\n",
			errContains: "missing 'name'",
		},
		{
			name:        "missing url",
			src:         "namespaces:\n  - name: GLib\n",
			errContains: `namespace "GLib" is missing 'url'`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().Parse(testContext(), []byte(tc.src), "bad.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := NewLoader().LoadFile(testContext(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read YAML file")
}
