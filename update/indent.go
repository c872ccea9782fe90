package update

import (
	"strings"

	"github.com/croabeast/yaml-api/ir"
)

// indentFor returns two spaces per nesting level below the top.
func indentFor(path string) string {
	return strings.Repeat("  ", strings.Count(path, ir.Sep))
}

// addIndent prefixes every line of s with indents, dropping trailing
// blank lines; callers account for the final newline themselves.
func addIndent(s, indents string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	var b strings.Builder
	for i, ln := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(indents)
		b.WriteString(ln)
	}
	return b.String()
}

// reindent shifts a newline-terminated block right by indents, keeping
// exactly one trailing newline.
func reindent(block, indents string) string {
	block = strings.TrimSuffix(block, "\n")
	return indents + strings.ReplaceAll(block, "\n", "\n"+indents) + "\n"
}
