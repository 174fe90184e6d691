package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dosanma1/modelforge/internal/fields"
	"github.com/dosanma1/modelforge/internal/generator"
	"github.com/dosanma1/modelforge/internal/project"
	"github.com/dosanma1/modelforge/internal/ui"
)

func newGenerateModelCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "model",
		Short: "Generate a model class and its interface",
		Long: `Generate a model inside a container.

  modelforge generate model --model=AcmeBlogBundle:Blog/Post

creates the model Acme\BlogBundle\Model\Blog\Post and its interface.
Fields are given as name:type pairs; the type defaults to string and a
parenthesized suffix such as string(255) is ignored:

  modelforge generate model --model=AcmeBlogBundle:Blog/Post --fields="title:string(255) body"

--with-manager also generates the model manager and the storage manager
of --db-driver, registered in the driver configuration of --format.

Without a terminal, or with --no-interaction, every option must be
given on the command line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGeneration(cmd, generation{
				step:     "model",
				title:    "Model generation",
				opts:     opts,
				interact: interactModel,
				options: func(p *project.Project, _ generator.Target) (generator.GeneratorOptions, error) {
					list, err := fields.NewParser(p.TypeRegistry()).Parse(opts.fields)
					if err != nil {
						return generator.GeneratorOptions{}, err
					}

					genOpts := generator.GeneratorOptions{Fields: list, WithManager: opts.withManager}
					if !opts.withManager {
						return genOpts, nil
					}

					genOpts.Driver, genOpts.Format, err = storageOptions(opts)
					if err != nil {
						return generator.GeneratorOptions{}, err
					}
					return genOpts, nil
				},
			})
		},
	}

	addModelFlags(cmd, opts)
	addStorageFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.fields, "fields", "", `The fields of the new model, e.g. "title:string(255) body:text"`)
	cmd.Flags().BoolVar(&opts.withManager, "with-manager", false, "Also generate the model manager and the storage manager")

	return cmd
}

func interactModel(w *wizard) error {
	w.intro("Welcome to the model generator", "This command helps you generate models.")

	if err := w.askModel(false); err != nil {
		return err
	}
	if err := w.askFields(); err != nil {
		return err
	}
	if err := w.askWithManager(); err != nil {
		return err
	}

	lines := []string{fmt.Sprintf("You are going to generate a %s model", ui.NounStyle.Render(w.ref.String()))}

	if w.opts.withManager {
		if err := w.askDriver(); err != nil {
			return err
		}
		if err := w.askFormat(); err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("using the %s db driver and %s format.",
			ui.NounStyle.Render(w.opts.dbDriver), ui.NounStyle.Render(w.opts.format)))
	}

	w.summary(lines...)
	return nil
}
