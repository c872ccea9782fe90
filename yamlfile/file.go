// Package yamlfile manages one YAML configuration file end to end:
// locating it under the loader's base directory, seeding it from the
// packaged default resource, reloading, saving, typed access by dotted
// path, and format-preserving updates through the update package.
package yamlfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/croabeast/yaml-api/encode"
	"github.com/croabeast/yaml-api/ir"
	"github.com/croabeast/yaml-api/parse"
	"github.com/croabeast/yaml-api/resource"
	"github.com/croabeast/yaml-api/unitmap"
	"github.com/croabeast/yaml-api/update"
)

// File is a managed YAML configuration file. The zero value is not
// usable; construct with New.
type File struct {
	loader resource.Loader

	name     string
	folder   string
	location string
	path     string

	resourcePath string
	ignored      []string
	updatable    bool

	config *ir.Node
	logf   func(string, ...any)
}

// New describes the file <base>/<folder>/<name>.yml. Nothing is read or
// created until SaveDefaults, Reload or Update runs. The packaged
// resource path defaults to the file's own location.
func New(loader resource.Loader, folder, name string) *File {
	location := name + ".yml"
	if folder != "" {
		location = filepath.Join(folder, location)
	}
	return &File{
		loader:       loader,
		name:         name,
		folder:       folder,
		location:     location,
		path:         filepath.Join(loader.BaseDir(), location),
		resourcePath: filepath.ToSlash(location),
		updatable:    true,
	}
}

// WithResourcePath overrides where the packaged default is read from.
func (f *File) WithResourcePath(path string) *File {
	f.resourcePath = filepath.ToSlash(path)
	return f
}

// WithIgnored sets the dotted paths Update leaves untouched.
func (f *File) WithIgnored(paths ...string) *File {
	f.ignored = append([]string(nil), paths...)
	return f
}

// WithUpdatable toggles Update; a non-updatable file makes Update a
// no-op.
func (f *File) WithUpdatable(v bool) *File {
	f.updatable = v
	return f
}

// WithLogger installs a logger for lifecycle messages.
func (f *File) WithLogger(logf func(string, ...any)) *File {
	f.logf = logf
	return f
}

func (f *File) Name() string     { return f.name }
func (f *File) Folder() string   { return f.folder }
func (f *File) Location() string { return f.location }
func (f *File) Path() string     { return f.path }

func (f *File) log(msg string, args ...any) {
	if f.logf != nil {
		f.logf(msg, args...)
	}
}

// Resource opens the packaged default for this file.
func (f *File) Resource() (io.ReadCloser, error) {
	return f.loader.Resource(f.resourcePath)
}

// SaveDefaults copies the packaged default onto disk when the file does
// not exist yet, then loads it.
func (f *File) SaveDefaults() error {
	if _, err := os.Stat(f.path); err == nil {
		return nil
	}
	r, err := f.Resource()
	if err != nil {
		return fmt.Errorf("save defaults %s: %w", f.location, err)
	}
	defer r.Close()
	if err := resource.Save(r, f.loader.BaseDir(), f.location, false); err != nil {
		return fmt.Errorf("save defaults %s: %w", f.location, err)
	}
	f.log("file %s generated from defaults", f.location)
	return f.Reload()
}

// Reload re-reads the file from disk, replacing the in-memory tree.
func (f *File) Reload() error {
	node, err := parse.File(f.path)
	if err != nil {
		return err
	}
	if node.Type != ir.ObjectType {
		// Empty or scalar-only file; accessors still need an object.
		node = &ir.Node{Type: ir.ObjectType}
	}
	f.config = node
	return nil
}

// Config returns the in-memory tree, loading it on first use. A file
// that cannot be read yields an empty tree, so accessors stay usable.
func (f *File) Config() *ir.Node {
	if f.config == nil {
		if err := f.Reload(); err != nil {
			f.log("file %s could not be loaded: %v", f.location, err)
			f.config = &ir.Node{Type: ir.ObjectType}
		}
	}
	return f.config
}

// Save writes the in-memory tree back to disk. Comments are not kept on
// this path; Update is the format-preserving one.
func (f *File) Save() error {
	text, err := encode.Document(f.Config())
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path, []byte(text), 0644); err != nil {
		return err
	}
	f.log("file %s saved", f.location)
	return nil
}

// Update reconciles the file against the packaged default, preserving
// comments, order and ignored sections, then reloads it.
func (f *File) Update() error {
	if !f.updatable {
		return nil
	}
	u, err := update.New(f.loader, f.resourcePath, f.path, f.ignored...)
	if err != nil {
		return err
	}
	if err := u.Update(); err != nil {
		return err
	}
	f.log("file %s updated", f.location)
	return f.Reload()
}

// Has reports whether the dotted path exists.
func (f *File) Has(path string) bool {
	return ir.GetPath(f.Config(), path) != nil
}

// Get returns the node at the dotted path, or nil.
func (f *File) Get(path string) *ir.Node {
	return ir.GetPath(f.Config(), path)
}

// Set replaces the value at the dotted path, creating intermediate
// sections as needed. The change is in-memory until Save.
func (f *File) Set(path string, val *ir.Node) error {
	return ir.SetPath(f.Config(), path, val)
}

// String returns the string at path, or def when absent or not a string.
func (f *File) String(path, def string) string {
	n := f.Get(path)
	if n == nil || n.Type != ir.StringType {
		return def
	}
	return n.String
}

// Int returns the integer at path, or def.
func (f *File) Int(path string, def int) int {
	n := f.Get(path)
	if n == nil || n.Type != ir.NumberType || n.Int64 == nil {
		return def
	}
	return int(*n.Int64)
}

// Float returns the number at path as a float, or def.
func (f *File) Float(path string, def float64) float64 {
	n := f.Get(path)
	if n == nil || n.Type != ir.NumberType {
		return def
	}
	if n.Float64 != nil {
		return *n.Float64
	}
	if n.Int64 != nil {
		return float64(*n.Int64)
	}
	return def
}

// Bool returns the boolean at path, or def.
func (f *File) Bool(path string, def bool) bool {
	n := f.Get(path)
	if n == nil || n.Type != ir.BoolType {
		return def
	}
	return n.Bool
}

// StringSlice returns the sequence at path rendered as strings. A scalar
// at path yields a one-element slice; an absent path yields nil.
func (f *File) StringSlice(path string) []string {
	n := f.Get(path)
	if n == nil {
		return nil
	}
	if n.Type != ir.ArrayType {
		return []string{scalarString(n)}
	}
	res := make([]string, 0, len(n.Values))
	for _, v := range n.Values {
		res = append(res, scalarString(v))
	}
	return res
}

// Section returns the object at path; an empty path returns the root.
func (f *File) Section(path string) *ir.Node {
	if path == "" {
		return f.Config()
	}
	n := f.Get(path)
	if n == nil || n.Type != ir.ObjectType {
		return nil
	}
	return n
}

// Keys lists the keys under path; deep enumerates nested sections too.
func (f *File) Keys(path string, deep bool) []string {
	sec := f.Section(path)
	if sec == nil {
		return nil
	}
	if deep {
		return ir.DeepKeys(sec)
	}
	res := make([]string, len(sec.Fields))
	for i := range sec.Fields {
		res[i] = sec.Fields[i].String
	}
	return res
}

// Units wraps every direct subsection under path as a unitmap.Unit.
func (f *File) Units(path string) []unitmap.Unit {
	sec := f.Section(path)
	if sec == nil {
		return nil
	}
	var res []unitmap.Unit
	for i := range sec.Fields {
		if sec.Values[i].Type != ir.ObjectType {
			continue
		}
		res = append(res, unitmap.Of(sec.Values[i]))
	}
	return res
}

func scalarString(n *ir.Node) string {
	switch n.Type {
	case ir.StringType:
		return n.String
	case ir.BoolType:
		return strconv.FormatBool(n.Bool)
	case ir.NumberType:
		if n.Int64 != nil {
			return strconv.FormatInt(*n.Int64, 10)
		}
		if n.Float64 != nil {
			return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
		}
	case ir.NullType:
		return ""
	}
	return ""
}
