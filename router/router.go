package router

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/jmgilman/go/pathfs/billy"
	"github.com/jmgilman/go/pathfs/core"
	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/internal/logging"
)

// Kind tags the two target variants.
type Kind int

const (
	// KindRealOS targets the local backend.
	KindRealOS Kind = iota
	// KindVirtual targets a backend registered under a virtual root name.
	KindVirtual
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	if k == KindVirtual {
		return "virtual"
	}
	return "real-os"
}

// Target is the result of resolving a path.
type Target struct {
	// Kind says which variant this is.
	Kind Kind

	// Name is the virtual root name ("//<name>"); empty for KindRealOS.
	Name string

	// Backend serves the path. It is nil for an unregistered virtual root
	// and for the empty path.
	Backend core.Backend

	// Native is the path in the backend's own namespace.
	Native string
}

func (t Target) missing(op string) error {
	return &fs.PathError{Op: op, Path: t.Name + t.Native, Err: fs.ErrNotExist}
}

// OpenDir opens the target directory.
func (t Target) OpenDir() (core.Session, error) {
	if t.Backend == nil {
		return nil, t.missing("open")
	}
	return t.Backend.OpenDir(t.Native)
}

// Status returns the target's status, following symbolic links.
func (t Target) Status() (core.FileStatus, error) {
	if t.Backend == nil {
		return core.NotFoundStatus(), t.missing("stat")
	}
	return t.Backend.Status(t.Native)
}

// SymlinkStatus returns the target's status without following a final link.
func (t Target) SymlinkStatus() (core.FileStatus, error) {
	if t.Backend == nil {
		return core.NotFoundStatus(), t.missing("lstat")
	}
	return t.Backend.SymlinkStatus(t.Native)
}

// FileSize returns the size of the target file.
func (t Target) FileSize() (int64, error) {
	if t.Backend == nil {
		return 0, t.missing("size")
	}
	return t.Backend.FileSize(t.Native)
}

// IsVirtualRootName reports whether name has the "//<name>" form.
func IsVirtualRootName(name string) bool {
	return len(name) > 2 && strings.HasPrefix(name, "//<")
}

// Router maps virtual root names to backends.
// It is safe for concurrent use.
type Router struct {
	mu     sync.RWMutex
	local  core.Backend
	mounts map[string]core.Backend
	logger *logging.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLocal replaces the backend that serves non-virtual paths.
func WithLocal(b core.Backend) Option {
	return func(r *Router) {
		r.local = b
	}
}

// WithLogger sets the router's logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Router) {
		r.logger = l
	}
}

// New creates a router with no virtual mounts.
func New(opts ...Option) *Router {
	r := &Router{mounts: make(map[string]core.Backend)}
	for _, opt := range opts {
		opt(r)
	}
	if r.local == nil {
		r.local = billy.NewLocal()
	}
	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	return r
}

// Register mounts b under the virtual root name. The name must have the
// "//<name>" form and must not be registered already.
func (r *Router) Register(name string, b core.Backend) error {
	if !IsVirtualRootName(name) {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "virtual root name %q must start with //<", name),
			"name", name)
	}
	if b == nil {
		return errors.Newf(errors.CodeInvalidInput, "no backend given for %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.mounts[name]; ok {
		return errors.WithContext(
			errors.Newf(errors.CodeAlreadyExists, "virtual root %q is already registered", name),
			"name", name)
	}
	r.mounts[name] = b
	r.logger.WithMount(name).Info(context.Background(), "registered backend", "type", b.Type().String())
	return nil
}

// Unregister removes the mount for name and returns its backend.
func (r *Router) Unregister(name string) (core.Backend, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.mounts[name]
	if ok {
		delete(r.mounts, name)
		r.logger.WithMount(name).Info(context.Background(), "unregistered backend")
	}
	return b, ok
}

// Lookup returns the backend registered under name.
func (r *Router) Lookup(name string) (core.Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.mounts[name]
	return b, ok
}

// Names returns the registered virtual root names in sorted order.
func (r *Router) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.mounts))
	for name := range r.mounts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Local returns the backend serving non-virtual paths.
func (r *Router) Local() core.Backend {
	return r.local
}

// Resolve maps p to its backend.
func (r *Router) Resolve(p fspath.Path) Target {
	if p.Empty() {
		return Target{Kind: KindRealOS}
	}

	rootName := p.RootName().GenericString()
	if IsVirtualRootName(rootName) {
		b, _ := r.Lookup(rootName)
		t := Target{Kind: KindVirtual, Name: rootName, Backend: b, Native: deroot(p)}
		if b == nil {
			r.logger.WithMount(rootName).Debug(context.Background(), "virtual root not registered",
				"path", p.String())
		}
		return t
	}

	native := p.String()
	if !filepath.IsAbs(native) {
		if abs, err := filepath.Abs(native); err == nil {
			native = abs
		}
	}
	return Target{Kind: KindRealOS, Backend: r.local, Native: native}
}

// deroot strips the root name and expresses the remainder as an absolute
// slash-separated path.
func deroot(p fspath.Path) string {
	return "/" + p.RelativePath().GenericString()
}

// OpenDir opens the directory p through its backend.
func (r *Router) OpenDir(p fspath.Path) (core.Session, error) {
	return r.Resolve(p).OpenDir()
}

// Status returns the status of p, following symbolic links.
func (r *Router) Status(p fspath.Path) (core.FileStatus, error) {
	return r.Resolve(p).Status()
}

// SymlinkStatus returns the status of p without following a final link.
func (r *Router) SymlinkStatus(p fspath.Path) (core.FileStatus, error) {
	return r.Resolve(p).SymlinkStatus()
}

// FileSize returns the size of the file p.
func (r *Router) FileSize(p fspath.Path) (int64, error) {
	return r.Resolve(p).FileSize()
}

// WithMemory registers a fresh in-memory backend under name, calls fn with
// it, and unregisters it when fn returns.
func (r *Router) WithMemory(name string, fn func(*billy.MemoryFS) error) error {
	mem := billy.NewMemory()
	if err := r.Register(name, mem); err != nil {
		return err
	}
	defer r.Unregister(name)
	return fn(mem)
}

// Default is the process-wide router.
var Default = New()

// Register mounts b under name on Default.
func Register(name string, b core.Backend) error {
	return Default.Register(name, b)
}

// Unregister removes the mount for name from Default.
func Unregister(name string) (core.Backend, bool) {
	return Default.Unregister(name)
}

// Resolve maps p to its backend using Default.
func Resolve(p fspath.Path) Target {
	return Default.Resolve(p)
}

// WithMemory scopes an in-memory mount on Default to the call of fn.
func WithMemory(name string, fn func(*billy.MemoryFS) error) error {
	return Default.WithMemory(name, fn)
}
