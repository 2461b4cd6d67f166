// Package core provides the backend contract consumed by the directory
// iterators and the storage router.
//
// A backend is anything that can enumerate the children of a directory and
// report the status of a path: the real operating system filesystem, an
// in-memory tree, or an S3 bucket. The iterators in package dir never talk to
// storage directly; they open a Session through a Backend and pull raw
// entries one at a time.
//
// # Design Philosophy
//
//   - Zero dependencies: only the Go standard library
//   - Small interfaces: Backend for reading, optional capabilities for writing
//   - Stdlib errors: backends report io/fs sentinels and syscall errnos, so
//     errors.Is keeps working across backends
//
// # Interface Hierarchy
//
//   - Backend: OpenDir, Status, SymlinkStatus, FileSize, Type
//   - Session: one pass over the entries of a single directory
//
// Optional capabilities, discovered by type assertion:
//
//   - MutableBackend: MkdirAll, WriteFile, Remove
//   - SymlinkBackend: Symlink, Readlink
//   - ChmodBackend: Chmod
//
// # Session contract
//
// A Session yields each child of the directory exactly once, in backend
// order, and returns io.EOF when exhausted. Sessions may or may not include
// "." and ".."; consumers filter them. Close releases any resources held by
// the session and is safe to call more than once.
//
//	sess, err := backend.OpenDir("/var/log")
//	if err != nil {
//	    return err
//	}
//	defer sess.Close()
//	for {
//	    entry, err := sess.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(entry.Name)
//	}
//
// # Backend Implementations
//
//   - github.com/jmgilman/go/pathfs/billy - go-billy local and in-memory backends
//   - github.com/jmgilman/go/pathfs/afero - backends over any afero.Fs
//   - github.com/jmgilman/go/pathfs/minio - S3-compatible object storage
package core
