package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dosanma1/modelforge/internal/driver"
	"github.com/dosanma1/modelforge/internal/errors"
	"github.com/dosanma1/modelforge/internal/generator"
	"github.com/dosanma1/modelforge/internal/naming"
	"github.com/dosanma1/modelforge/internal/output"
	"github.com/dosanma1/modelforge/internal/project"
	"github.com/dosanma1/modelforge/internal/template"
	"github.com/dosanma1/modelforge/internal/ui"
)

// generateOptions are the flags shared by the generate subcommands.
type generateOptions struct {
	model       string
	fields      string
	withManager bool
	dbDriver    string
	format      string
	dryRun      bool
}

// generation describes one generate subcommand.
type generation struct {
	// step is the generator registry name.
	step  string
	title string
	opts  *generateOptions

	// interact asks for the options; it only runs on a terminal.
	interact func(w *wizard) error

	// options converts the resolved target and flags into generator options.
	options func(p *project.Project, t generator.Target) (generator.GeneratorOptions, error)
}

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [type]",
		Aliases: []string{"g"},
		Short:   "Generate models and model managers",
		Long: `Generate scaffolding inside a container of the project.

Available types:
  model     Generate a model class and its interface
  manager   Generate a model manager interface and abstract manager
  storage   Generate a storage manager and register it in the driver configuration

Models are named with the shortcut notation Container:Path/Name, for
example AcmeBlogBundle:Blog/Post.

Examples:
  modelforge generate model --model=AcmeBlogBundle:Blog/Post --fields="title:string(255) body"
  modelforge g model --model=AcmeBlogBundle:Blog/Post --with-manager --db-driver=mongodb --format=yml
  modelforge generate storage --model=AcmeBlogBundle:Blog/Post --dry-run`,
	}

	cmd.AddCommand(newGenerateModelCmd(a))
	cmd.AddCommand(newGenerateManagerCmd(a))
	cmd.AddCommand(newGenerateStorageCmd(a))

	return cmd
}

func addModelFlags(cmd *cobra.Command, opts *generateOptions) {
	cmd.Flags().StringVar(&opts.model, "model", "", "The model class name in shortcut notation (e.g. AcmeBlogBundle:Blog/Post)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show the files that would be written without writing them")
}

func addStorageFlags(cmd *cobra.Command, opts *generateOptions) {
	cmd.Flags().StringVar(&opts.dbDriver, "db-driver", "", "Storage driver of the model manager: orm or mongodb (default: project defaults.driver, then orm)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Format of the driver configuration: php, xml or yml (default: project defaults.format, then xml)")
}

// storageOptions parses --db-driver and --format.
func storageOptions(opts *generateOptions) (driver.Driver, driver.Format, error) {
	d, err := driver.Parse(opts.dbDriver)
	if err != nil {
		return 0, "", err
	}
	f, err := driver.ParseFormat(opts.format)
	if err != nil {
		return 0, "", err
	}
	return d, f, nil
}

// runGeneration loads the project, asks the questions on a terminal and
// runs the generator.
func (a *app) runGeneration(cmd *cobra.Command, g generation) error {
	proj, err := a.openProject()
	if err != nil {
		return toExitError(err)
	}

	resolver := project.NewResolver(proj.Config)
	g.opts.dbDriver = resolver.ResolveDriver(g.opts.dbDriver)
	g.opts.format = resolver.ResolveFormat(g.opts.format)

	out := cmd.OutOrStdout()

	if a.interactive() {
		w := &wizard{prompter: a.prompter, out: out, project: proj, opts: g.opts}
		if err := g.interact(w); err != nil {
			return toExitError(err)
		}

		ok, err := a.prompter.AskConfirm("Do you confirm generation", true)
		if err != nil {
			return toExitError(err)
		}
		if !ok {
			writeln(out, ui.Failure("Command aborted"))
			return &ExitError{
				Err:     errors.Wrap(errors.ErrAborted, "generation declined"),
				Code:    ExitGeneralError,
				Printed: true,
			}
		}
	}

	ct, target, err := resolveTarget(proj, g.opts.model)
	if err != nil {
		return toExitError(err)
	}

	genOpts, err := g.options(proj, target)
	if err != nil {
		return toExitError(err)
	}
	genOpts.Target = target

	var (
		fs      generator.Filesystem
		changes func() []generator.PlannedFile
	)
	if g.opts.dryRun {
		dry := generator.NewDryRunFS(generator.DiskFS{})
		fs, changes = dry, dry.Planned
	} else {
		rec := generator.NewRecordingFS(generator.DiskFS{})
		fs, changes = rec, rec.Written
	}

	engine := template.NewEngine(proj.SkeletonDirs(ct)...)
	gen, err := generator.NewDefaultRegistry(fs, engine).Get(g.step)
	if err != nil {
		return toExitError(err)
	}

	writeln(out, ui.Section(g.title))
	output.Debug("running generator", "generator", gen.Name(), "model", g.opts.model, "dry-run", g.opts.dryRun)

	_, genErr := gen.Generate(cmd.Context(), genOpts)

	for _, f := range changes() {
		rel := proj.Relative(f.Path)
		switch {
		case g.opts.dryRun:
			writeln(out, ui.Planned(rel, f.Existed))
		case f.Existed:
			writeln(out, ui.Updated(rel))
		default:
			writeln(out, ui.Created(rel))
		}
	}

	if genErr != nil {
		return toExitError(genErr)
	}

	if g.opts.dryRun {
		writeln(out, ui.HelpStyle.Render("Dry run: nothing was written."))
		return nil
	}

	writef(out, "\nGenerating the %s code: %s\n", g.step, ui.SuccessStyle.Render("OK"))
	return nil
}

// resolveTarget turns a shortcut into a generation target.
func resolveTarget(proj *project.Project, shortcut string) (project.ResolvedContainer, generator.Target, error) {
	if shortcut == "" {
		return project.ResolvedContainer{}, generator.Target{}, errors.NewValidationError(
			"the --model option is required",
			"",
			"pass a shortcut like AcmeBlogBundle:Blog/Post or run interactively",
		)
	}

	ref, err := naming.Resolve(shortcut)
	if err != nil {
		return project.ResolvedContainer{}, generator.Target{}, err
	}

	ct, err := proj.Container(ref.ContainerID())
	if err != nil {
		return project.ResolvedContainer{}, generator.Target{}, fmt.Errorf("model %s: %w", ref, err)
	}

	return ct, generator.NewTarget(ct, ref), nil
}
