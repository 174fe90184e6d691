package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dosanma1/modelforge/internal/errors"
	"github.com/dosanma1/modelforge/internal/output"
	"github.com/dosanma1/modelforge/internal/template"
	"github.com/dosanma1/modelforge/internal/ui"
	"github.com/dosanma1/modelforge/internal/watch"
)

type skeletonOptions struct {
	container string
	watch     bool
}

func newSkeletonCmd(a *app) *cobra.Command {
	opts := &skeletonOptions{}

	cmd := &cobra.Command{
		Use:   "skeleton",
		Short: "Inspect the skeleton templates",
		Long: `Skeleton templates are looked up in order in:

  <container>/` + template.ContainerSkeletonDir + `
  <project>/` + template.ProjectSkeletonDir + `
  the skeletonDirs of the project file
  the built-in skeletons

The first directory holding a template wins.`,
	}
	cmd.PersistentFlags().StringVar(&opts.container, "container", "", "Include the overrides of this container")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the templates and the directory each one is taken from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toExitError(a.runSkeletonList(cmd, opts))
		},
	}

	lint := &cobra.Command{
		Use:   "lint",
		Short: "Parse every template and report syntax errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSkeletonLint(cmd, opts)
		},
	}
	lint.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Lint again whenever a template changes")

	cmd.AddCommand(list, lint)
	return cmd
}

// skeletonDirs returns the override directories of the project, if any.
// Outside a project only the built-in skeletons are used.
func (a *app) skeletonDirs(opts *skeletonOptions) ([]string, error) {
	proj, err := a.openProject()
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) && opts.container == "" {
			output.Debug("no project file, using built-in skeletons", "error", err)
			return nil, nil
		}
		return nil, err
	}

	if opts.container == "" {
		return template.SkeletonDirs("", proj.Root, proj.Config.SkeletonDirs), nil
	}

	ct, err := proj.Container(opts.container)
	if err != nil {
		return nil, err
	}
	return proj.SkeletonDirs(ct), nil
}

func (a *app) runSkeletonList(cmd *cobra.Command, opts *skeletonOptions) error {
	dirs, err := a.skeletonDirs(opts)
	if err != nil {
		return err
	}

	engine := template.NewEngine(dirs...)
	names, err := engine.Names()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, name := range names {
		src, _, err := engine.Lookup(name)
		if err != nil {
			return err
		}
		writef(tw, "%s\t%s\n", name, src.Name)
	}
	return tw.Flush()
}

func (a *app) runSkeletonLint(cmd *cobra.Command, opts *skeletonOptions) error {
	dirs, err := a.skeletonDirs(opts)
	if err != nil {
		return toExitError(err)
	}

	failed, err := lintSkeletons(cmd, dirs)
	if err != nil {
		return toExitError(err)
	}

	if !opts.watch {
		if failed > 0 {
			return &ExitError{
				Err:     errors.Wrap(errors.ErrValidation, fmt.Sprintf("%d broken templates", failed)),
				Code:    ExitValidationError,
				Printed: true,
			}
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return watchSkeletons(ctx, cmd, dirs)
}

// watchSkeletons lints again on every template change until ctx is done.
func watchSkeletons(ctx context.Context, cmd *cobra.Command, dirs []string) error {
	w, err := watch.New(watch.DefaultConfig(dirs...))
	if err != nil {
		return toExitError(err)
	}
	if err := w.Start(ctx); err != nil {
		return toExitError(err)
	}
	defer func() { _ = w.Stop() }()

	output.Info("watching skeleton directories", "dirs", len(w.WatchedDirs()))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-w.Events():
			output.Info("template "+ev.Type.String(), "path", ev.Path)
			if _, err := lintSkeletons(cmd, dirs); err != nil {
				output.Error("lint failed", "error", err)
			}
		case err := <-w.Errors():
			output.Warn("watch error", "error", err)
		}
	}
}

// lintSkeletons prints the lint result and returns the number of broken templates.
func lintSkeletons(cmd *cobra.Command, dirs []string) (int, error) {
	out := cmd.OutOrStdout()

	issues, err := template.NewEngine(dirs...).Lint()
	if err != nil {
		return 0, err
	}

	if len(issues) == 0 {
		writeln(out, ui.SuccessStyle.Render(ui.IconSuccess)+" all templates parse")
		return 0, nil
	}

	for _, issue := range issues {
		writeln(out, ui.Failure(fmt.Sprintf("%s (%s): %v", issue.Name, issue.Source, issue.Err)))
	}
	return len(issues), nil
}
