package cli

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/pathfs/dir"
	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
)

// usage is the result of the du command.
type usage struct {
	Path  string `json:"path"`
	Files int64  `json:"files"`
	Dirs  int64  `json:"dirs"`
	Bytes int64  `json:"bytes"`
}

func newDuCmd(a *app) *cobra.Command {
	var (
		jobs   int
		follow bool
	)

	cmd := &cobra.Command{
		Use:   "du PATH",
		Short: "Sum the sizes of all regular files below a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return errors.Newf(errors.CodeInvalidInput, "--jobs must be at least 1, got %d", jobs)
			}

			root := fspath.New(args[0])
			u, err := a.diskUsage(cmd, root, jobs, follow)
			if err != nil {
				return err
			}

			if a.json {
				return writeJSONLine(cmd.OutOrStdout(), u)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t(%d files, %d directories)\n", u.Bytes, u.Path, u.Files, u.Dirs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of concurrent size lookups")
	cmd.Flags().BoolVarP(&follow, "follow-symlinks", "L", false, "descend into symbolic links to directories")
	return cmd
}

// diskUsage walks root on the calling goroutine and looks up file sizes on
// up to jobs goroutines. Sizes already reported by the listing are used
// directly by Entry.FileSize.
func (a *app) diskUsage(cmd *cobra.Command, root fspath.Path, jobs int, follow bool) (usage, error) {
	opts := []dir.Option{dir.WithRouter(a.router)}
	if follow {
		opts = append(opts, dir.FollowSymlinks())
	}

	it, err := dir.NewRecursiveIterator(root, opts...)
	if err != nil {
		return usage{}, err
	}
	defer it.Close()

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)

	var files, dirs, total atomic.Int64
	for e, err := range it.All() {
		if err != nil {
			_ = g.Wait()
			return usage{}, err
		}
		if ctx.Err() != nil {
			break
		}

		st, err := e.Status()
		if err != nil {
			if errors.HasCode(err, errors.CodeNotFound) {
				continue
			}
			_ = g.Wait()
			return usage{}, err
		}
		if st.IsDirectory() {
			dirs.Add(1)
			continue
		}
		if !st.IsRegular() {
			continue
		}

		g.Go(func() error {
			n, err := e.FileSize()
			if err != nil {
				return err
			}
			files.Add(1)
			total.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return usage{}, err
	}

	return usage{
		Path:  root.String(),
		Files: files.Load(),
		Dirs:  dirs.Load(),
		Bytes: total.Load(),
	}, nil
}
