// Package commands implements the CLI commands for gotobuild.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/gotobuild/internal/app"
	"go.trai.ch/gotobuild/internal/build"
	"go.trai.ch/gotobuild/internal/core/ports"
)

// CLI represents the command line interface for gotobuild.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, path string) (location string, found bool, err error)
	Rebuild(ctx context.Context, dir string) (int, error)
	Clean(ctx context.Context, options app.CleanOptions) error
}

// New creates a new CLI instance with the given app.
// The logger, if non-nil, is switched to verbose output by --verbose.
func New(a Application, log ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		logger: log,
	}

	rootCmd := &cobra.Command{
		Use:   "gotobuild -i <file>",
		Short: "Find the BUILD target that declares a source file",
		Long: "gotobuild prints \"<BUILD file>:<line>\" for the Bazel target whose srcs or hdrs\n" +
			"list the given file. It prints nothing when no target lists it.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.applyVerbose,
		RunE:              c.runResolve,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// -v belongs to --verbose, so --version is declared without a shorthand
	// before cobra would add its default one.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log progress to stderr")
	rootCmd.Flags().Bool("version", false, "Print the application version")

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringP("input", "i", "", "Input file for which to find the corresponding BUILD file")
	_ = rootCmd.MarkFlagRequired("input")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newRebuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runResolve(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")

	location, found, err := c.app.Resolve(cmd.Context(), input)
	if err != nil {
		return err
	}
	if found {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), location)
	}
	return nil
}

func (c *CLI) applyVerbose(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if c.logger != nil {
		c.logger.SetVerbose(verbose)
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
