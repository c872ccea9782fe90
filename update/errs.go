package update

import "errors"

var (
	// ErrConstruct covers failures building an Updater: unreadable
	// template or target, or a template with unusable key names.
	ErrConstruct = errors.New("updater construction")

	// ErrIgnoredPath reports an ignored path that does not resolve to a
	// section of the current document.
	ErrIgnoredPath = errors.New("invalid ignored section")
)
