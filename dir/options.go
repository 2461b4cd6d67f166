package dir

import (
	"github.com/jmgilman/go/pathfs/core"
	"github.com/jmgilman/go/pathfs/router"
)

// Option configures iterator construction.
type Option func(*options)

type options struct {
	router  *router.Router
	dirOpts core.DirectoryOptions
}

// WithRouter resolves paths through r instead of router.Default.
func WithRouter(r *router.Router) Option {
	return func(o *options) {
		o.router = r
	}
}

// WithDirectoryOptions sets the recursive traversal options.
func WithDirectoryOptions(opts core.DirectoryOptions) Option {
	return func(o *options) {
		o.dirOpts = opts
	}
}

// FollowSymlinks makes the recursive iterator descend into symbolic links
// to directories.
func FollowSymlinks() Option {
	return func(o *options) {
		o.dirOpts |= core.FollowDirectorySymlink
	}
}

// SkipPermissionDenied makes the recursive iterator treat subdirectories it
// may not open as empty.
func SkipPermissionDenied() Option {
	return func(o *options) {
		o.dirOpts |= core.SkipPermissionDenied
	}
}

func collect(opts []Option) options {
	o := options{router: router.Default}
	for _, opt := range opts {
		opt(&o)
	}
	if o.router == nil {
		o.router = router.Default
	}
	return o
}
