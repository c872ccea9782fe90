package update

import (
	"bufio"
	"bytes"
	"maps"
	"slices"
	"strings"

	"github.com/croabeast/yaml-api/debug"
)

// Comments maps dotted key paths of the default template to the raw
// comment and blank-line block preceding each key, verbatim, trailing
// newline included. A block after the last key is kept separately as the
// trailing block.
type Comments struct {
	byPath   map[string]string
	trailing string
}

// At returns the raw block preceding the key at path, or "".
func (c *Comments) At(path string) string {
	return c.byPath[path]
}

// Trailing returns the raw block after the last key, or "".
func (c *Comments) Trailing() string {
	return c.trailing
}

// Len returns the number of attributed blocks, trailing block excluded.
func (c *Comments) Len() int {
	return len(c.byPath)
}

// overlay returns a copy of c whose blocks are overridden by pri
// wherever pri attributed one. The trailing block stays c's.
func (c *Comments) overlay(pri *Comments) *Comments {
	res := &Comments{
		byPath:   make(map[string]string, len(c.byPath)+len(pri.byPath)),
		trailing: c.trailing,
	}
	maps.Copy(res.byPath, c.byPath)
	maps.Copy(res.byPath, pri.byPath)
	return res
}

// ParseComments scans the template's raw text and attributes each comment
// block to the key line that follows it. keys is the template tree's deep
// key enumeration in document order; it validates candidate paths and
// drives the look-ahead that rewinds the tracker between keys.
//
// Lines inside sequence bodies are skipped, so comments there are not
// attributed.
func ParseComments(src []byte, keys []string) *Comments {
	c := &Comments{byPath: map[string]string{}}
	tr := newTracker(keys)

	var (
		buf    strings.Builder
		anchor string
	)
	sc := bufio.NewScanner(bytes.NewReader(src))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		trim := strings.TrimSpace(line)
		if strings.HasPrefix(trim, "-") {
			continue
		}
		if trim == "" || strings.HasPrefix(trim, "#") {
			buf.WriteString(trim)
			buf.WriteByte('\n')
			continue
		}

		// An unindented line is a top-level key: restart the tracker
		// and remember the line as the recovery anchor.
		if !strings.HasPrefix(line, " ") {
			tr.reset()
			anchor = trim
		}
		tr.feed(trim, true)
		path := tr.path()

		if buf.Len() > 0 {
			c.byPath[path] = buf.String()
			buf.Reset()
		}

		// Rewind to the deepest tracked prefix the next template key
		// still nests under; if nothing survives, re-seed from the
		// anchor line.
		next := nextKey(keys, path)
		if next == "" {
			continue
		}
		for !tr.empty() && !strings.HasPrefix(next, tr.path()) {
			tr.pop()
		}
		if tr.empty() {
			tr.feed(anchor, false)
		}
	}
	if buf.Len() > 0 {
		c.trailing = buf.String()
	}
	if debug.Comments() {
		debug.Logf("comments: %d blocks, trailing %d bytes\n", len(c.byPath), len(c.trailing))
	}
	return c
}

func nextKey(keys []string, path string) string {
	idx := slices.Index(keys, path) + 1
	if idx >= len(keys) {
		return ""
	}
	return keys[idx]
}
