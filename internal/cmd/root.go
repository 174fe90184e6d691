// Package cmd provides CLI command implementations.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dosanma1/modelforge/internal/output"
	"github.com/dosanma1/modelforge/internal/ui"
)

// rootOptions are the global flags.
type rootOptions struct {
	verbose       bool
	configFile    string
	noInteraction bool
}

// app is the state shared by every command of one invocation.
type app struct {
	opts       rootOptions
	prompter   ui.Prompter
	isTerminal func() bool
}

// NewRootCmd creates the root command for the modelforge CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		prompter:   ui.NewPrompter(),
		isTerminal: stdioIsTerminal,
	})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modelforge",
		Short: "modelforge - model and model manager scaffolding",
		Long: `modelforge generates model classes, model managers and storage managers
inside the containers of a project, and registers the managers in the
driver configuration of the container.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(output.LogConfig{
				Verbose: a.opts.verbose,
				Writer:  cmd.ErrOrStderr(),
			})
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&a.opts.configFile, "config", "", "Path to the project file (default: .modelforge.yaml found from the working directory up)")
	rootCmd.PersistentFlags().BoolVarP(&a.opts.noInteraction, "no-interaction", "n", false, "Do not ask any interactive question")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newSkeletonCmd(a))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// interactive reports whether questions may be asked.
func (a *app) interactive() bool {
	return !a.opts.noInteraction && a.isTerminal()
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
