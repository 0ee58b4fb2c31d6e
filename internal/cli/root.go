package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/c4kit/c4kit/pkg/buildinfo"
)

// Execute runs the c4kit CLI with the given base context and returns
// an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug. The configured logger is attached to the command context and
// retrieved by subcommands via loggerFromContext.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "c4kit",
		Short:        "c4kit serializes C4 architecture models to Structurizr DSL",
		Long:         `c4kit turns C4 architecture models (people, software systems, containers, components, and code elements) into Structurizr DSL documents that diagramming tools can render.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newExportCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCompletionCmd())

	return root
}
