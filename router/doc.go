// Package router resolves paths to the storage backend that serves them.
//
// Paths whose root name has the form "//<name>" address a virtual root. The
// backend registered under that name serves them, and it sees the path with
// the root name removed:
//
//	r := router.New()
//	_ = r.Register("//<assets>", billy.NewMemory())
//	t := r.Resolve(fspath.New("//<assets>/img/logo.png"))
//	// t.Kind == router.KindVirtual, t.Native == "/img/logo.png"
//
// Every other path goes to the local backend (the host filesystem unless
// WithLocal says otherwise), with relative paths made absolute first.
//
// A virtual root that is not registered resolves to a target without a
// backend. Its operations report fs.ErrNotExist, so iterating such a path
// yields nothing.
//
// # Process-wide registry
//
// Default is the router used when callers do not inject one. Register,
// Unregister and Resolve at package level operate on it. Mounts stay in place
// until they are unregistered; WithMemory scopes an in-memory mount to the
// duration of one function call.
package router
