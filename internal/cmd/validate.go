package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dosanma1/modelforge/internal/errors"
	"github.com/dosanma1/modelforge/internal/project"
	"github.com/dosanma1/modelforge/internal/ui"
	"github.com/dosanma1/modelforge/pkg/xos"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the " + project.ConfigFileName + " project file",
		Long: `Validates the project file against the JSON Schema, then checks the
rules the schema cannot express and that every container path exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd)
		},
	}
}

func (a *app) runValidate(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	configFile, err := a.configFile()
	if err != nil {
		return toExitError(err)
	}

	writeln(out, "Validating "+configFile+"...")

	issues, err := project.ValidateSchema(configFile)
	if err != nil {
		return toExitError(err)
	}
	if len(issues) > 0 {
		writeln(out, ui.Failure("Validation failed with the following errors:"))
		writeln(out)
		for i, issue := range issues {
			writef(out, "%d. %s\n", i+1, issue.Description)
			writef(out, "   Field: %s\n", issue.Field)
			writef(out, "   Type: %s\n\n", issue.Type)
		}
		return &ExitError{
			Err:     errors.Wrap(errors.ErrValidation, fmt.Sprintf("%d schema errors", len(issues))),
			Code:    ExitValidationError,
			Printed: true,
		}
	}

	proj, err := project.Open(filepath.Dir(configFile), configFile)
	if err != nil {
		return toExitError(err)
	}

	var missing int
	for _, name := range proj.ContainerNames() {
		ct, err := proj.Container(name)
		if err != nil {
			return toExitError(err)
		}
		if !xos.IsDir(ct.Dir) {
			missing++
			writeln(out, ui.Failure(fmt.Sprintf("container %s: %s is not a directory", ct.Name, ct.Dir)))
		}
	}
	if missing > 0 {
		return &ExitError{
			Err:     errors.Wrap(errors.ErrValidation, fmt.Sprintf("%d container paths missing", missing)),
			Code:    ExitValidationError,
			Printed: true,
		}
	}

	writeln(out, ui.SuccessStyle.Render(ui.IconSuccess)+" "+project.ConfigFileName+" is valid")
	return nil
}

// configFile returns the --config file or the project file found from the
// working directory upwards.
func (a *app) configFile() (string, error) {
	if a.opts.configFile != "" {
		if !xos.Exists(a.opts.configFile) {
			return "", errors.NewNotFoundError("project file not found", a.opts.configFile, "run modelforge init")
		}
		return filepath.Abs(a.opts.configFile)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	root, err := project.FindRoot(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, project.ConfigFileName), nil
}
