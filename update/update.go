package update

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/croabeast/yaml-api/debug"
	"github.com/croabeast/yaml-api/encode"
	"github.com/croabeast/yaml-api/ir"
	"github.com/croabeast/yaml-api/parse"
	"github.com/croabeast/yaml-api/resource"
)

// Updater reconciles one file against one default template. All state is
// built at construction and immutable afterwards; Update may be called
// any number of times.
type Updater struct {
	path string

	def     *ir.Node
	current *ir.Node
	defKeys []string

	comments *Comments
	ignored  map[string]string
	order    []string
}

// New builds an Updater for the file at path, reading the default
// template through the loader. Every cache — the comment map, the
// rendered ignored blocks, both parsed trees — is built here, so a bad
// ignored path or unreadable source fails now, before anything touches
// the file.
func New(loader resource.Loader, resourcePath, path string, ignored ...string) (*Updater, error) {
	rc, err := loader.Resource(resourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: resource %q: %v", ErrConstruct, resourcePath, err)
	}
	raw, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: resource %q: %v", ErrConstruct, resourcePath, err)
	}
	return NewFromBytes(raw, path, ignored...)
}

// NewFromBytes is New with the template's raw text already in memory.
func NewFromBytes(defSrc []byte, path string, ignored ...string) (*Updater, error) {
	curSrc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConstruct, err)
	}
	def, err := parse.Bytes(defSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: default template: %v", ErrConstruct, err)
	}
	if err := checkKeyNames(def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConstruct, err)
	}
	current, err := parse.Bytes(curSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConstruct, path, err)
	}

	u := &Updater{
		path:    path,
		def:     def,
		current: current,
		defKeys: ir.DeepKeys(def),
	}
	u.comments = ParseComments(defSrc, u.defKeys)

	// Ignored sections replay the user's own comments; the template's
	// blocks only fill in where the current file has none.
	igComments := u.comments
	if len(ignored) > 0 {
		cur := ParseComments(curSrc, ir.DeepKeys(current))
		igComments = u.comments.overlay(cur)
	}
	u.ignored = make(map[string]string, len(ignored))
	for _, ig := range ignored {
		block, err := RenderIgnored(ig, current, igComments)
		if err != nil {
			return nil, err
		}
		if debug.Ignored() {
			debug.Logf("ignored %s:\n%s", ig, block)
		}
		u.ignored[ig] = block
		u.order = append(u.order, ig)
	}
	return u, nil
}

// checkKeyNames rejects raw key names containing the path separator,
// which would make dotted paths ambiguous. Only keys reachable by dotted
// path matter; sequence elements are outside the path model and their
// keys stay unconstrained.
func checkKeyNames(def *ir.Node) error {
	return def.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if y.Type == ir.ArrayType {
			return false, nil
		}
		if y.Type != ir.ObjectType {
			return true, nil
		}
		for _, f := range y.Fields {
			if f.Type == ir.StringType && strings.Contains(f.String, ir.Sep) {
				return false, fmt.Errorf("key %q contains reserved separator %q", f.String, ir.Sep)
			}
		}
		return true, nil
	})
}

// Path returns the target file.
func (u *Updater) Path() string {
	return u.path
}

// Comments returns the comment map extracted from the template.
func (u *Updater) Comments() *Comments {
	return u.comments
}

// Keys returns the template's deep key enumeration in document order.
func (u *Updater) Keys() []string {
	return u.defKeys
}

// Merged assembles the updated document text. The template's deep key
// order drives emission; the current document only supplies values.
func (u *Updater) Merged() (string, error) {
	var b strings.Builder
outer:
	for _, full := range u.defKeys {
		indents := indentFor(full)

		if len(u.ignored) > 0 {
			if block, ok := u.ignored[full]; ok {
				b.WriteString(block)
				continue
			}
			// Descendants of an ignored path are already contained in
			// the ancestor's block.
			for _, ig := range u.order {
				if strings.HasPrefix(full, ig+ir.Sep) {
					continue outer
				}
			}
		}

		if cm := u.comments.At(full); cm != "" {
			b.WriteString(reindent(cm, indents))
		}

		val := ir.GetPath(u.current, full)
		if val == nil {
			val = ir.GetPath(u.def, full)
		}

		segs := strings.Split(full, ir.Sep)
		key := segs[len(segs)-1]

		if val.Type == ir.ObjectType {
			b.WriteString(indents)
			b.WriteString(key)
			b.WriteByte(':')
			if len(val.Fields) == 0 {
				b.WriteString(" {}")
			}
			b.WriteByte('\n')
			continue
		}

		entry, err := encode.Entry(key, val)
		if err != nil {
			return "", err
		}
		b.WriteString(reindent(entry, indents))
	}
	b.WriteString(u.comments.Trailing())
	return b.String(), nil
}

// Update writes the merged document to the file, but only when its bytes
// differ from what is already on disk; a second run with an unchanged
// template performs no write.
func (u *Updater) Update() error {
	text, err := u.Merged()
	if err != nil {
		return err
	}
	old, err := os.ReadFile(u.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", u.path, err)
	}
	if string(old) == text {
		if debug.Update() {
			debug.Logf("update %s: unchanged\n", u.path)
		}
		return nil
	}
	if debug.Update() {
		debug.Logf("update %s: writing %d bytes\n", u.path, len(text))
	}
	if err := os.WriteFile(u.path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", u.path, err)
	}
	return nil
}
