// Package commands implements the CLI commands for the reso tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/app"
	"go.trai.ch/reso/internal/build"
)

// CLI represents the command line interface for reso.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	List(w io.Writer, opts app.ListOptions) error
	Fit(w io.Writer, opts app.FitOptions) error
	Scale(w io.Writer, opts app.ScaleOptions) error
	Resize(w io.Writer, opts app.ResizeOptions) error
	Window(ctx context.Context, opts app.WindowOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "reso",
		Short:         "Resolution and aspect-ratio arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newFitCmd())
	rootCmd.AddCommand(c.newScaleCmd())
	rootCmd.AddCommand(c.newResizeCmd())
	rootCmd.AddCommand(c.newWindowCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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
