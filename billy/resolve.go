package billy

import (
	"io/fs"
	"path"
	"strings"

	"github.com/jmgilman/go/pathfs/core"
)

// maxLinkHops bounds symbolic link resolution, matching Linux's MAXSYMLINKS.
const maxLinkHops = 40

// resolve rewrites name so that no element before the last one is a
// symbolic link. With followFinal the last element is resolved too.
// Missing elements are left in place so the caller's own lookup reports
// them.
func (b *backend) resolve(name string, followFinal bool) (string, error) {
	if !b.resolveLinks {
		return name, nil
	}

	queue := splitPath(name)
	resolved := "/"
	hops := 0

	for len(queue) > 0 {
		elt := queue[0]
		queue = queue[1:]

		if elt == ".." {
			resolved = path.Dir(resolved)
			continue
		}

		candidate := path.Join(resolved, elt)
		if len(queue) == 0 && !followFinal {
			return candidate, nil
		}

		fi, err := b.bfs.Lstat(candidate)
		if err != nil {
			return path.Join(append([]string{candidate}, queue...)...), nil
		}
		if fi.Mode()&fs.ModeSymlink == 0 {
			resolved = candidate
			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", &fs.PathError{Op: "resolve", Path: name, Err: core.ErrTooManyLinks}
		}
		target, err := b.bfs.Readlink(candidate)
		if err != nil {
			return "", err
		}
		target = strings.ReplaceAll(target, `\`, "/")
		if strings.HasPrefix(target, "/") {
			resolved = "/"
		}
		queue = append(splitPath(target), queue...)
	}

	return resolved, nil
}

func splitPath(p string) []string {
	var out []string
	for _, elt := range strings.Split(p, "/") {
		if elt == "" || elt == "." {
			continue
		}
		out = append(out, elt)
	}
	return out
}
