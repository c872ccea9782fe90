package update

import (
	"fmt"
	"strings"

	"github.com/croabeast/yaml-api/encode"
	"github.com/croabeast/yaml-api/ir"
)

// RenderIgnored renders the subtree of the current document at the dotted
// path as a self-contained literal block: each key preceded by its
// reindented comment block from the template, values exactly as stored.
// The path must name a section; anything else is an error.
func RenderIgnored(path string, root *ir.Node, comments *Comments) (string, error) {
	segs := strings.Split(path, ir.Sep)
	parent := root
	for i := 0; i < len(segs)-1; i++ {
		idx := resolveKey(parent, segs[i])
		if idx < 0 {
			return "", fmt.Errorf("%w: %s", ErrIgnoredPath, strings.Join(segs[:i+1], ir.Sep))
		}
		parent = parent.Values[idx]
		if parent.Type != ir.ObjectType {
			return "", fmt.Errorf("%w: %s is not a section", ErrIgnoredPath, strings.Join(segs[:i+1], ir.Sep))
		}
	}
	last := segs[len(segs)-1]
	idx := resolveKey(parent, last)
	if idx < 0 {
		return "", fmt.Errorf("%w: %s", ErrIgnoredPath, path)
	}
	if parent.Values[idx].Type != ir.ObjectType {
		return "", fmt.Errorf("%w: %s is a value, not a section", ErrIgnoredPath, path)
	}
	prefix := strings.Join(segs[:len(segs)-1], ir.Sep)
	return renderBlock(prefix, last, parent, comments)
}

// renderBlock renders one key of parent and everything below it. Each
// call returns an owned fragment; siblings are concatenated by the
// caller, so no state is shared across the recursion.
func renderBlock(prefix, key string, parent *ir.Node, comments *Comments) (string, error) {
	full := key
	if prefix != "" {
		full = prefix + ir.Sep + key
	}
	idx := resolveKey(parent, key)
	if idx < 0 {
		return "", fmt.Errorf("%w: %s", ErrIgnoredPath, full)
	}
	indents := indentFor(full)

	var b strings.Builder
	if cm := comments.At(full); cm != "" {
		b.WriteString(addIndent(cm, indents))
		b.WriteByte('\n')
	}
	b.WriteString(addIndent(key, indents))
	b.WriteByte(':')

	val := parent.Values[idx]
	if val.Type == ir.ObjectType {
		if len(val.Fields) == 0 {
			b.WriteString(" {}\n")
			return b.String(), nil
		}
		b.WriteByte('\n')
		for i := range val.Fields {
			child, err := renderBlock(full, val.Fields[i].String, val, comments)
			if err != nil {
				return "", err
			}
			b.WriteString(child)
		}
		return b.String(), nil
	}

	text, err := encode.Value(val)
	if err != nil {
		return "", err
	}
	if val.Type == ir.ArrayType {
		b.WriteByte('\n')
		b.WriteString(addIndent(text, indents))
		b.WriteByte('\n')
		return b.String(), nil
	}
	b.WriteByte(' ')
	// Literal-style strings continue on following lines; those need the
	// key's indent too, or the block stops parsing.
	if head, rest, ok := strings.Cut(text, "\n"); ok && rest != "" {
		b.WriteString(head)
		b.WriteByte('\n')
		b.WriteString(addIndent(rest, indents))
		b.WriteByte('\n')
		return b.String(), nil
	}
	b.WriteString(text)
	return b.String(), nil
}
