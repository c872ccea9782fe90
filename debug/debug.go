// Package debug holds env-var driven switches for tracing the merge
// pipeline, plus a small stderr logger that knows how to render ir nodes.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Update   bool
	Comments bool
	Ignored  bool
	Watch    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Update = boolEnv("YAMLAPI_DEBUG_UPDATE")
	d.Comments = boolEnv("YAMLAPI_DEBUG_COMMENTS")
	d.Ignored = boolEnv("YAMLAPI_DEBUG_IGNORED")
	d.Watch = boolEnv("YAMLAPI_DEBUG_WATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Update() bool {
	return d.Update
}
func Comments() bool {
	return d.Comments
}
func Ignored() bool {
	return d.Ignored
}
func Watch() bool {
	return d.Watch
}
