// Package cli implements the fswalk command.
package cli

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/pathfs/config"
	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/internal/logging"
	"github.com/jmgilman/go/pathfs/router"
)

// app carries the global flags and the router built from them.
type app struct {
	configPath string
	envFiles   []string
	verbose    bool
	json       bool

	router *router.Router
	logger *logging.Logger
}

// NewRootCmd builds the fswalk command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "fswalk",
		Short: "Walk local, in-memory and object-store filesystems",
		Long: `fswalk lists and walks directories through a storage router.

Paths starting with //<name> address the virtual roots declared in the mount
table (--config, default ./` + config.FileName + `); every other path is resolved
on the host filesystem.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "mount table to load")
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files loaded before the mount table")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.json, "json", false, "emit JSON output")

	root.AddCommand(
		newLsCmd(a),
		newTreeCmd(a),
		newPathCmd(a),
		newDuCmd(a),
	)
	return root
}

// Execute runs fswalk with the process arguments.
func Execute() error {
	return run(NewRootCmd(), os.Stderr)
}

// run executes cmd and reports a failure on stderr.
func run(cmd *cobra.Command, stderr io.Writer) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}

	asJSON, _ := cmd.PersistentFlags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(stderr)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(map[string]any{"error": errors.ToJSON(err)})
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

func (a *app) setup(stderr io.Writer) error {
	path := a.configPath
	if path == "" {
		path = config.FileName
	}

	cfg, err := config.Load(path, a.envFiles...)
	switch {
	case stderrors.Is(err, config.ErrConfigNotFound) && a.configPath == "":
		cfg = &config.Config{}
	case err != nil:
		return fmt.Errorf("load %s: %w", path, err)
	}

	a.logger = cfg.Log.Logger(stderr, a.verbose)
	a.router = router.New(router.WithLogger(a.logger))
	return cfg.Apply(a.router, a.logger)
}
