package yamlfile

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/croabeast/yaml-api/ir"
	"github.com/croabeast/yaml-api/resource"
)

const template = `# main
a:
  b: 1
  flag: true
name: hello
ratio: 2.5
list:
- x
- y
`

func testLoader(t *testing.T) resource.FS {
	t.Helper()
	return resource.FS{
		Resources: fstest.MapFS{
			"config.yml": {Data: []byte(template)},
		},
		Base: t.TempDir(),
	}
}

func TestSaveDefaults(t *testing.T) {
	loader := testLoader(t)
	f := New(loader, "", "config")
	require.Equal(t, filepath.Join(loader.Base, "config.yml"), f.Path())

	require.NoError(t, f.SaveDefaults())
	d, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	require.Equal(t, template, string(d))

	// A second call leaves an existing file alone.
	require.NoError(t, os.WriteFile(f.Path(), []byte("a:\n  b: 9\n"), 0644))
	require.NoError(t, f.SaveDefaults())
	d, err = os.ReadFile(f.Path())
	require.NoError(t, err)
	require.Equal(t, "a:\n  b: 9\n", string(d))
}

func TestAccessors(t *testing.T) {
	loader := testLoader(t)
	f := New(loader, "", "config")
	require.NoError(t, f.SaveDefaults())

	require.True(t, f.Has("a.b"))
	require.False(t, f.Has("a.missing"))
	require.Equal(t, 1, f.Int("a.b", 0))
	require.Equal(t, 7, f.Int("a.missing", 7))
	require.Equal(t, "hello", f.String("name", ""))
	require.Equal(t, "fallback", f.String("a.b", "fallback"))
	require.True(t, f.Bool("a.flag", false))
	require.Equal(t, 2.5, f.Float("ratio", 0))
	require.Equal(t, 1.0, f.Float("a.b", 0))
	require.Equal(t, []string{"x", "y"}, f.StringSlice("list"))
	require.Equal(t, []string{"hello"}, f.StringSlice("name"))
	require.Nil(t, f.StringSlice("missing"))

	require.Equal(t, []string{"a", "name", "ratio", "list"}, f.Keys("", false))
	require.Equal(t, []string{"b", "flag"}, f.Keys("a", false))
	require.Equal(t, []string{"a", "a.b", "a.flag", "name", "ratio", "list"}, f.Keys("", true))

	sec := f.Section("a")
	require.NotNil(t, sec)
	require.Nil(t, f.Section("name"))
}

func TestSetAndSave(t *testing.T) {
	loader := testLoader(t)
	f := New(loader, "", "config")
	require.NoError(t, f.SaveDefaults())

	require.NoError(t, f.Set("a.b", ir.FromInt(7)))
	require.NoError(t, f.Set("new.nested", ir.FromString("v")))
	require.NoError(t, f.Save())

	g := New(loader, "", "config")
	require.NoError(t, g.Reload())
	require.Equal(t, 7, g.Int("a.b", 0))
	require.Equal(t, "v", g.String("new.nested", ""))
}

func TestUpdateRestoresTemplateShape(t *testing.T) {
	loader := testLoader(t)
	f := New(loader, "", "config")

	// Simulate a user file missing keys and carrying a changed value.
	require.NoError(t, os.WriteFile(f.Path(), []byte("a:\n  b: 9\n"), 0644))
	require.NoError(t, f.Update())

	d, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	want := `# main
a:
  b: 9
  flag: true
name: hello
ratio: 2.5
list:
- x
- y
`
	require.Equal(t, want, string(d))
	require.Equal(t, 9, f.Int("a.b", 0))
}

func TestUpdateNotUpdatable(t *testing.T) {
	loader := testLoader(t)
	f := New(loader, "", "config").WithUpdatable(false)

	require.NoError(t, os.WriteFile(f.Path(), []byte("a:\n  b: 9\n"), 0644))
	require.NoError(t, f.Update())
	d, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	require.Equal(t, "a:\n  b: 9\n", string(d))
}

func TestConfigFallsBackToEmpty(t *testing.T) {
	loader := testLoader(t)
	var logged bool
	f := New(loader, "", "absent").WithLogger(func(string, ...any) { logged = true })

	require.NotNil(t, f.Config())
	require.False(t, f.Has("anything"))
	require.True(t, logged)
}

func TestFolderLayout(t *testing.T) {
	base := t.TempDir()
	loader := resource.FS{
		Resources: fstest.MapFS{
			"lang/en.yml": {Data: []byte("greeting: hi\n")},
		},
		Base: base,
	}
	f := New(loader, "lang", "en")
	require.Equal(t, filepath.Join("lang", "en.yml"), f.Location())
	require.Equal(t, filepath.Join(base, "lang", "en.yml"), f.Path())
	require.NoError(t, f.SaveDefaults())
	require.Equal(t, "hi", f.String("greeting", ""))
}

func TestUnits(t *testing.T) {
	loader := resource.FS{
		Resources: fstest.MapFS{
			"units.yml": {Data: []byte(`groups:
  vip:
    permission: vip.use
    priority: 3
  basic: {}
  stray: not-a-section
`)},
		},
		Base: t.TempDir(),
	}
	f := New(loader, "", "units")
	require.NoError(t, f.SaveDefaults())

	units := f.Units("groups")
	require.Len(t, units, 2)
	require.Equal(t, "vip", units[0].Name())
	require.Equal(t, "basic", units[1].Name())
}
