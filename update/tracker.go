package update

import (
	"strings"

	"github.com/croabeast/yaml-api/ir"
)

// tracker incrementally reconstructs the dotted key path of the raw line
// being scanned. YAML does not guarantee indentation width, so dedents
// are decoded by validating candidate paths against the key set known
// from the parsed template instead of counting columns.
type tracker struct {
	known map[string]bool
	segs  []string
}

func newTracker(keys []string) *tracker {
	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}
	return &tracker{known: known}
}

// feed appends the key token of line to the tracked path. With check set,
// trailing segments are popped first until appending the token yields a
// known path.
func (t *tracker) feed(line string, check bool) {
	tok := keyToken(line)
	if check {
		for len(t.segs) > 0 && !t.known[t.path()+ir.Sep+tok] {
			t.pop()
		}
	}
	t.segs = append(t.segs, tok)
}

func (t *tracker) pop() {
	if len(t.segs) > 0 {
		t.segs = t.segs[:len(t.segs)-1]
	}
}

func (t *tracker) path() string {
	return strings.Join(t.segs, ir.Sep)
}

func (t *tracker) empty() bool {
	return len(t.segs) == 0
}

func (t *tracker) reset() {
	t.segs = t.segs[:0]
}

// keyToken extracts the raw key of a "key: value" line: split on the
// first colon, or on ": " when the value itself contains colons, and
// strip quoting.
func keyToken(line string) string {
	line = strings.TrimSpace(line)
	parts := strings.Split(line, ":")
	if len(parts) > 2 {
		parts = strings.Split(line, ": ")
	}
	key := strings.ReplaceAll(parts[0], "'", "")
	return strings.ReplaceAll(key, `"`, "")
}
