package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/pathfs/dir"
	"github.com/jmgilman/go/pathfs/fspath"
)

func newLsCmd(a *app) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "ls PATH",
		Short: "List the entries of one directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := dir.NewIterator(fspath.New(args[0]), dir.WithRouter(a.router))
			if err != nil {
				return err
			}

			var entries []dir.Entry
			for e, err := range it.All() {
				if err != nil {
					return err
				}
				entries = append(entries, e)
			}
			slices.SortFunc(entries, dir.Entry.Compare)

			out := cmd.OutOrStdout()
			for _, e := range entries {
				st, err := e.SymlinkStatus()
				if err != nil {
					return err
				}

				if a.json {
					rec := newRecord(e, st)
					if st.IsRegular() {
						if n, err := e.FileSize(); err == nil {
							rec.Size = &n
						}
					}
					if err := writeJSONLine(out, rec); err != nil {
						return err
					}
					continue
				}

				if !long {
					fmt.Fprintln(out, displayName(e, st))
					continue
				}
				size := "-"
				if st.IsRegular() {
					n, err := e.FileSize()
					if err != nil {
						return err
					}
					size = fmt.Sprint(n)
				}
				fmt.Fprintf(out, "%-9s %10s %s\n", st.Type, size, displayName(e, st))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "show type and size")
	return cmd
}
