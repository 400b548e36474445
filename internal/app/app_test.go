package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/urlmap/internal/config"
	"github.com/specialistvlad/urlmap/internal/hcl"
	"github.com/specialistvlad/urlmap/internal/registry"
	"github.com/specialistvlad/urlmap/internal/urlmapjs"
	"github.com/specialistvlad/urlmap/internal/yamlconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoader() config.Loader {
	return config.NewMultiLoader(hcl.NewLoader(), yamlconf.NewLoader(), urlmapjs.NewLoader())
}

// writeFixtures lays out one file per supported format and returns the directory.
func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"a_core.hcl": `
locals {
  docs = "https://docs.gtk.org"
}

namespace "GLib" {
  url = "${local.docs}/glib/"
}
`,
		"b_gobject.yaml": `namespaces:
  - name: GObject
    url: https://docs.gtk.org/gobject/
    description: Type system
`,
		"c_urlmap.js": `baseURLs = [
    [ 'Gio', 'https://docs.gtk.org/gio/' ],
    [ 'Gtk', 'https://docs.gtk.org/gtk3/' ],
]
`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func newTestApp(t *testing.T, command string, args ...string) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()
	cfg, err := NewConfig(Config{ConfigPaths: []string{writeFixtures(t)}, Command: command, Args: args})
	require.NoError(t, err)
	a, out, logs, err := SetupAppTest(t, cfg, testLoader(), "")
	require.NoError(t, err)
	return a, out, logs
}

func TestNewApp_LoadsAllFormatsInOrder(t *testing.T) {
	a, _, logs := newTestApp(t, CommandCheck)
	assert.Equal(t, []string{"GLib", "GObject", "Gio", "Gtk"}, a.Registry().Namespaces())
	assert.Contains(t, logs.String(), "Registry loaded.")
	assert.Contains(t, logs.String(), "Registering namespace.")
	assert.Contains(t, logs.String(), "namespace=GObject")
}

func TestRun_Resolve(t *testing.T) {
	a, out, _ := newTestApp(t, CommandResolve, "GLib", "Gtk")
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "https://docs.gtk.org/glib/\nhttps://docs.gtk.org/gtk3/\n", out.String())
}

func TestRun_ResolveUnknown(t *testing.T) {
	a, _, _ := newTestApp(t, CommandResolve, "Gdk")
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrUnknownNamespace)
}

func TestRun_List(t *testing.T) {
	a, out, _ := newTestApp(t, CommandList)
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "GLib\thttps://docs.gtk.org/glib/\n"+
		"GObject\thttps://docs.gtk.org/gobject/\tType system\n"+
		"Gio\thttps://docs.gtk.org/gio/\n"+
		"Gtk\thttps://docs.gtk.org/gtk3/\n", out.String())
}

func TestRun_Link(t *testing.T) {
	a, out, _ := newTestApp(t, CommandLink, "[method@Gtk.Widget.show]", "signal@GObject.Object::notify")
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "https://docs.gtk.org/gtk3/method.Widget.show.html\n"+
		"https://docs.gtk.org/gobject/signal.Object.notify.html\n", out.String())
}

func TestRun_ExpandFile(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(doc, []byte("Use [class@Gio.Menu].\n"), 0o600))

	a, out, _ := newTestApp(t, CommandExpand, doc)
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "Use [Gio.Menu](https://docs.gtk.org/gio/class.Menu.html).\n", out.String())
}

func TestRun_ExpandStdinWithFailures(t *testing.T) {
	cfg, err := NewConfig(Config{ConfigPaths: []string{writeFixtures(t)}, Command: CommandExpand, Args: []string{"-"}})
	require.NoError(t, err)
	a, out, logs, err := SetupAppTest(t, cfg, testLoader(), "See [class@Adw.Leaflet] and [struct@GLib.Variant].")
	require.NoError(t, err)

	err = a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 reference(s) in - could not be expanded")
	assert.Equal(t, "See [class@Adw.Leaflet] and [GLib.Variant](https://docs.gtk.org/glib/struct.Variant.html).", out.String())
	assert.Contains(t, logs.String(), "Reference left unexpanded.")
}

func TestRun_ExportRoundTrip(t *testing.T) {
	target := filepath.Join(t.TempDir(), "urlmap.js")
	a, _, _ := newTestApp(t, CommandExport, target)
	require.NoError(t, a.Run(context.Background()))

	cfg, err := NewConfig(Config{ConfigPaths: []string{target}, Command: CommandList})
	require.NoError(t, err)
	exported, _, _, err := SetupAppTest(t, cfg, testLoader(), "")
	require.NoError(t, err)
	assert.Equal(t, a.Registry().Namespaces(), exported.Registry().Namespaces())
}

func TestRun_ExportStdout(t *testing.T) {
	a, out, _ := newTestApp(t, CommandExport, "-")
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "baseURLs = [\n    [ 'GLib', 'https://docs.gtk.org/glib/' ],\n")
}

func TestRun_Check(t *testing.T) {
	a, out, _ := newTestApp(t, CommandCheck)
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "OK: 4 namespace(s) loaded from ")
}

func TestNewApp_DuplicateAcrossFiles(t *testing.T) {
	dir := writeFixtures(t)
	dup := "namespace \"Gtk\" {\n  url = \"https://docs.gtk.org/gtk4/\"\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "d_gtk4.hcl"), []byte(dup), 0o600))

	cfg, err := NewConfig(Config{ConfigPaths: []string{dir}, Command: CommandCheck})
	require.NoError(t, err)
	_, _, _, err = SetupAppTest(t, cfg, testLoader(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrDuplicateNamespace)
	assert.Contains(t, err.Error(), "c_urlmap.js:3")
	assert.Contains(t, err.Error(), "d_gtk4.hcl:2")
}

func TestNewApp_LoadFailure(t *testing.T) {
	cfg, err := NewConfig(Config{ConfigPaths: []string{filepath.Join(t.TempDir(), "missing.hcl")}, Command: CommandCheck})
	require.NoError(t, err)
	_, _, _, err = SetupAppTest(t, cfg, testLoader(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestNewConfig(t *testing.T) {
	paths := []string{"urlmap.hcl"}
	testCases := []struct {
		name        string
		cfg         Config
		errContains string
	}{
		{name: "valid resolve", cfg: Config{ConfigPaths: paths, Command: CommandResolve, Args: []string{"GLib", "Gio"}}},
		{name: "valid list", cfg: Config{ConfigPaths: paths, Command: CommandList}},
		{name: "missing paths", cfg: Config{Command: CommandList}, errContains: "configuration path is required"},
		{name: "missing command", cfg: Config{ConfigPaths: paths}, errContains: "a command is required"},
		{name: "unknown command", cfg: Config{ConfigPaths: paths, Command: "serve"}, errContains: `unknown command "serve"`},
		{name: "resolve without args", cfg: Config{ConfigPaths: paths, Command: CommandResolve}, errContains: "at least 1 argument"},
		{name: "list with args", cfg: Config{ConfigPaths: paths, Command: CommandList, Args: []string{"x"}}, errContains: "takes no arguments"},
		{name: "export with two args", cfg: Config{ConfigPaths: paths, Command: CommandExport, Args: []string{"a", "b"}}, errContains: "exactly 1 argument"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg, *cfg)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("WARNING").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("bogus").String())
}
