// Package update merges a packaged default YAML template into a
// user-edited file on disk.
//
// The merged file contains every key of the template that the user has
// not customized, keeps the user's values wherever present, preserves the
// template's comments, blank lines and key order, and reproduces
// explicitly ignored sections byte for byte from the current file.
//
// The hard part is reconstructing textual structure that a structured
// parse discards. Comment blocks are attributed to keys by scanning the
// template's raw text with a path tracker that validates every candidate
// dotted path against the keys known from the parsed tree; indentation
// width alone is not a reliable depth signal in YAML.
//
// All caches (comment map, ignored block map, parsed trees) are built at
// construction and immutable afterwards. Update is idempotent: the file
// is rewritten only when the merged bytes differ from what is on disk.
// Concurrent updates of one file are not coordinated; callers serialize.
package update
