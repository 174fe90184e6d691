package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dosanma1/modelforge/internal/driver"
	"github.com/dosanma1/modelforge/internal/errors"
	"github.com/dosanma1/modelforge/internal/output"
	"github.com/dosanma1/modelforge/internal/project"
	"github.com/dosanma1/modelforge/internal/ui"
	"github.com/dosanma1/modelforge/pkg/xos"
)

type initOptions struct {
	containers []string
	driver     string
	format     string
	force      bool
}

func newInitCmd(a *app) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a " + project.ConfigFileName + " project file",
		Long: `Create a project file registering the containers code is generated into.

Containers are given as Name=Namespace=path, the path being relative to
the project directory:

  modelforge init --container 'AcmeBlogBundle=Acme\BlogBundle=src/Acme/BlogBundle'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return toExitError(a.runInit(cmd, dir, opts))
		},
	}

	cmd.Flags().StringArrayVar(&opts.containers, "container", nil, "Container to register as Name=Namespace=path (repeatable)")
	cmd.Flags().StringVar(&opts.driver, "db-driver", driver.ORM.ID(), "Default storage driver (orm, mongodb)")
	cmd.Flags().StringVar(&opts.format, "format", string(driver.XML), "Default configuration format (php, xml or yml)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing project file")

	return cmd
}

func (a *app) runInit(cmd *cobra.Command, dir string, opts *initOptions) error {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, project.ConfigFileName)
	if xos.Exists(path) && !opts.force {
		return errors.NewAlreadyExistsError("project file", path)
	}

	cfg := project.NewDefaultConfig()
	cfg.Defaults.Driver = opts.driver
	cfg.Defaults.Format = opts.format

	for _, spec := range opts.containers {
		ct, err := parseContainer(spec)
		if err != nil {
			return err
		}
		if err := cfg.AddContainer(ct); err != nil {
			return err
		}
	}

	if len(opts.containers) == 0 && a.interactive() {
		if err := a.askContainers(cmd, cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := cfg.Save(path); err != nil {
		return err
	}
	output.Debug("project file written", "path", path, "containers", len(cfg.Containers))

	out := cmd.OutOrStdout()
	writeln(out, ui.Created(path))
	for _, ct := range cfg.Containers {
		if !xos.IsDir(filepath.Join(dir, ct.Path)) {
			writeln(out, ui.WarningStyle.Render(ui.IconWarning)+" container "+ct.Name+" path "+ct.Path+" does not exist yet")
		}
	}
	return nil
}

// askContainers registers containers until an empty name is entered.
func (a *app) askContainers(cmd *cobra.Command, cfg *project.Config) error {
	writeln(cmd.OutOrStdout(), "Register the containers code is generated into (press <return> to stop).")

	for {
		name, err := a.prompter.AskText("Container name", "", nil)
		if err != nil {
			return err
		}
		if name == "" {
			return nil
		}

		namespace, err := a.prompter.AskText("Namespace", strings.TrimSuffix(name, "Bundle"), nil)
		if err != nil {
			return err
		}
		path, err := a.prompter.AskText("Path", "src/"+strings.ReplaceAll(namespace, `\`, "/"), nil)
		if err != nil {
			return err
		}

		if err := cfg.AddContainer(project.Container{Name: name, Namespace: namespace, Path: path}); err != nil {
			writeln(cmd.OutOrStdout(), ui.Failure(err.Error()))
		}
	}
}

// parseContainer parses Name=Namespace=path.
func parseContainer(spec string) (project.Container, error) {
	parts := strings.SplitN(spec, "=", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return project.Container{}, errors.NewValidationError(
			fmt.Sprintf("invalid container %q", spec),
			"",
			`expecting Name=Namespace=path, e.g. AcmeBlogBundle=Acme\BlogBundle=src/Acme/BlogBundle`,
		)
	}
	return project.Container{Name: parts[0], Namespace: parts[1], Path: filepath.ToSlash(parts[2])}, nil
}
