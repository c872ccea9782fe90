// Package resource defines the capability contract the library consumes
// from its host: opening a packaged resource by name and resolving a base
// directory for files. Hosts implement Loader directly; no reflection or
// dynamic dispatch is involved.
package resource

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Loader supplies packaged default resources and the directory user
// files live under.
type Loader interface {
	// Resource opens the named packaged resource for reading.
	Resource(name string) (io.ReadCloser, error)
	// BaseDir returns the directory user files are resolved against.
	BaseDir() string
}

// Dir is a Loader backed by a single directory on disk: resources and
// user files share the same root. Absolute resource names are opened
// as-is.
type Dir struct {
	Root string
}

func (d Dir) Resource(name string) (io.ReadCloser, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(d.Root, name)
	}
	return os.Open(name)
}

func (d Dir) BaseDir() string {
	return d.Root
}

// FS is a Loader whose packaged resources come from an fs.FS (typically
// an embed.FS) while user files live under Base on disk.
type FS struct {
	Resources fs.FS
	Base      string
}

func (l FS) Resource(name string) (io.ReadCloser, error) {
	f, err := l.Resources.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (l FS) BaseDir() string {
	return l.Base
}

// Save copies a resource stream to path below baseDir, creating parent
// directories. An existing file is left alone unless replace is set.
func Save(r io.Reader, baseDir, path string, replace bool) error {
	if r == nil {
		return fmt.Errorf("save %s: nil resource", path)
	}
	path = filepath.FromSlash(path)
	out := filepath.Join(baseDir, path)
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return err
	}
	if !replace {
		if _, err := os.Stat(out); err == nil {
			return fmt.Errorf("save %s: file already exists", out)
		}
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FileFrom resolves child path elements against a parent directory.
func FileFrom(parent string, children ...string) string {
	return filepath.Join(append([]string{parent}, children...)...)
}
