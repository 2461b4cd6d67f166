package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
)

// pathReport is the decomposition printed by the path command.
type pathReport struct {
	Path          string   `json:"path"`
	RootName      string   `json:"root_name"`
	RootDirectory string   `json:"root_directory"`
	RootPath      string   `json:"root_path"`
	RelativePath  string   `json:"relative_path"`
	ParentPath    string   `json:"parent_path"`
	Filename      string   `json:"filename"`
	Stem          string   `json:"stem"`
	Extension     string   `json:"extension"`
	Absolute      bool     `json:"absolute"`
	Normal        string   `json:"normal"`
	Elements      []string `json:"elements"`
	Relative      *string  `json:"relative,omitempty"`
	Proximate     *string  `json:"proximate,omitempty"`
}

func newPathCmd(a *app) *cobra.Command {
	var (
		relativeTo string
		style      string
	)

	cmd := &cobra.Command{
		Use:   "path PATH",
		Short: "Decompose a path without touching any filesystem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var st fspath.Style
			switch style {
			case "native":
				st = fspath.Native
			case "posix":
				st = fspath.POSIX
			case "windows":
				st = fspath.Windows
			default:
				return errors.Newf(errors.CodeInvalidInput, "unknown path style %q", style)
			}

			rep := describe(st.New(args[0]))
			if cmd.Flags().Changed("relative-to") {
				base := st.New(relativeTo)
				rel := rep.path.LexicallyRelative(base).String()
				prox := rep.path.LexicallyProximate(base).String()
				rep.Relative, rep.Proximate = &rel, &prox
			}

			if a.json {
				return writeJSONLine(cmd.OutOrStdout(), rep.pathReport)
			}
			return rep.print(cmd)
		},
	}

	cmd.Flags().StringVar(&relativeTo, "relative-to", "", "also express PATH relative to this base")
	cmd.Flags().StringVar(&style, "style", "native", "path grammar: native, posix or windows")
	return cmd
}

type described struct {
	pathReport
	path fspath.Path
}

func describe(p fspath.Path) described {
	var elems []string
	for e := range p.All() {
		elems = append(elems, e.String())
	}
	return described{
		path: p,
		pathReport: pathReport{
			Path:          p.String(),
			RootName:      p.RootName().String(),
			RootDirectory: p.RootDirectory().String(),
			RootPath:      p.RootPath().String(),
			RelativePath:  p.RelativePath().String(),
			ParentPath:    p.ParentPath().String(),
			Filename:      p.Filename().String(),
			Stem:          p.Stem().String(),
			Extension:     p.Extension().String(),
			Absolute:      p.IsAbsolute(),
			Normal:        p.LexicallyNormal().String(),
			Elements:      elems,
		},
	}
}

func (d described) print(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"path", d.Path},
		{"root-name", d.RootName},
		{"root-directory", d.RootDirectory},
		{"root-path", d.RootPath},
		{"relative-path", d.RelativePath},
		{"parent-path", d.ParentPath},
		{"filename", d.Filename},
		{"stem", d.Stem},
		{"extension", d.Extension},
		{"absolute", fmt.Sprint(d.Absolute)},
		{"normal", d.Normal},
		{"elements", fmt.Sprintf("%q", d.Elements)},
	}
	if d.Relative != nil {
		rows = append(rows, [2]string{"relative", *d.Relative}, [2]string{"proximate", *d.Proximate})
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s:\t%s\n", r[0], r[1])
	}
	return w.Flush()
}
