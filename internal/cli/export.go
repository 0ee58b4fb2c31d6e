package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c4kit/c4kit/pkg/manifest"
)

// exportOpts holds the flags for the export command.
type exportOpts struct {
	output string // output file path (stdout if empty)
}

// newExportCmd creates the export command: load a workspace definition
// file and write the serialized Structurizr DSL.
func newExportCmd() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export <workspace-file>",
		Short: "Serialize a workspace definition to Structurizr DSL",
		Long: `Serialize a workspace definition file to Structurizr DSL.

The definition format is chosen by file extension (.toml or .json).

Examples:
  c4kit export workspace.toml                 # DSL to stdout
  c4kit export workspace.json -o out.dsl      # DSL to a file`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runExport(c, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func runExport(cmd *cobra.Command, path string, opts exportOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	ws, err := manifest.Load(path)
	if err != nil {
		printError("Failed to load %s", path)
		return err
	}
	logger.Debugf("Loaded %s: %d persons, %d systems", path, len(ws.Persons), len(ws.Systems))

	s, err := ws.Serializer()
	if err != nil {
		printError("Invalid workspace definition in %s", path)
		return err
	}

	out, err := s.Serialize()
	if err != nil {
		printError("Serialization failed")
		return err
	}

	if opts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		prog.done("Serialized workspace")
		return nil
	}

	if err := os.WriteFile(opts.output, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done("Serialized workspace")
	printSuccess("Wrote %s", opts.output)
	printDetail("%d bytes", len(out)+1)
	return nil
}
