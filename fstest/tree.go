package fstest

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/jmgilman/go/pathfs/core"
)

// BuildTree creates a fixture tree below root.
//
// Each entry is a path relative to root:
//
//	"dir/"           a directory
//	"dir/file.txt"   a regular file whose content is its own name
//	"link -> target" a symbolic link (the backend must implement core.SymlinkBackend)
//
// Parent directories are created as needed.
func BuildTree(b core.MutableBackend, root string, entries ...string) error {
	for _, entry := range entries {
		if name, target, ok := strings.Cut(entry, " -> "); ok {
			sb, ok := b.(core.SymlinkBackend)
			if !ok {
				return fmt.Errorf("symlink %q: %w", name, core.ErrUnsupported)
			}
			link := path.Join(root, name)
			if err := b.MkdirAll(path.Dir(link), 0o755); err != nil {
				return fmt.Errorf("mkdir %q: %w", path.Dir(link), err)
			}
			if err := sb.Symlink(target, link); err != nil {
				return fmt.Errorf("symlink %q: %w", name, err)
			}
			continue
		}

		full := path.Join(root, entry)
		if strings.HasSuffix(entry, "/") {
			if err := b.MkdirAll(full, 0o755); err != nil {
				return fmt.Errorf("mkdir %q: %w", entry, err)
			}
			continue
		}
		if err := b.WriteFile(full, []byte(path.Base(full)), 0o644); err != nil {
			return fmt.Errorf("write %q: %w", entry, err)
		}
	}
	return nil
}

// ReadNames drains a session and returns the entry names in the order the
// backend produced them. The session is closed.
func ReadNames(s core.Session) ([]string, error) {
	defer func() { _ = s.Close() }()

	var names []string
	for {
		e, err := s.Next()
		if errors.Is(err, io.EOF) {
			return names, nil
		}
		if err != nil {
			return names, err
		}
		names = append(names, e.Name)
	}
}
