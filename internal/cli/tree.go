package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/pathfs/dir"
	"github.com/jmgilman/go/pathfs/fspath"
)

type treeFlags struct {
	follow   bool
	skipPerm bool
	maxDepth int
	exclude  []string
	boundary string
}

func newTreeCmd(a *app) *cobra.Command {
	f := &treeFlags{}

	cmd := &cobra.Command{
		Use:   "tree PATH",
		Short: "Walk a directory tree depth first",
		Long: `tree prints every entry below PATH, indented by depth. Within each directory
files come before subdirectories.

--exclude skips entries whose name matches a glob, and does not descend into
excluded directories. --boundary stops listing a directory after the first
entry with the given name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, pattern := range f.exclude {
				if _, err := path.Match(pattern, ""); err != nil {
					return fmt.Errorf("invalid --exclude pattern %q: %w", pattern, err)
				}
			}
			return a.runTree(cmd, fspath.New(args[0]), f)
		},
	}

	cmd.Flags().BoolVarP(&f.follow, "follow-symlinks", "L", false, "descend into symbolic links to directories")
	cmd.Flags().BoolVar(&f.skipPerm, "skip-permission-denied", false, "treat unreadable directories as empty")
	cmd.Flags().IntVarP(&f.maxDepth, "max-depth", "d", -1, "do not descend below this depth (-1 for no limit)")
	cmd.Flags().StringArrayVarP(&f.exclude, "exclude", "x", nil, "skip entries matching this glob (repeatable)")
	cmd.Flags().StringVar(&f.boundary, "boundary", "", "stop listing a directory after an entry with this name")
	return cmd
}

func (f *treeFlags) excluded(name string) bool {
	for _, pattern := range f.exclude {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (a *app) runTree(cmd *cobra.Command, root fspath.Path, f *treeFlags) error {
	opts := []dir.Option{dir.WithRouter(a.router)}
	if f.follow {
		opts = append(opts, dir.FollowSymlinks())
	}
	if f.skipPerm {
		opts = append(opts, dir.SkipPermissionDenied())
	}

	it, err := dir.NewRecursiveIterator(root, opts...)
	if err != nil {
		return err
	}
	defer it.Close()

	out := cmd.OutOrStdout()
	for !it.AtEnd() {
		e := it.Entry()
		depth := it.Depth()
		name := e.Path().Filename().String()

		if f.excluded(name) {
			it.DisableRecursionPending()
			if err := it.Increment(); err != nil {
				return err
			}
			continue
		}
		if f.maxDepth >= 0 && depth >= f.maxDepth {
			it.DisableRecursionPending()
		}

		st, err := e.SymlinkStatus()
		if err != nil {
			return err
		}
		if a.json {
			rec := newRecord(e, st)
			rec.Depth = &depth
			if err := writeJSONLine(out, rec); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), displayName(e, st))
		}

		if f.boundary != "" && name == f.boundary {
			if err := it.Pop(); err != nil {
				return err
			}
			continue
		}
		if err := it.Increment(); err != nil {
			return err
		}
	}
	return nil
}
