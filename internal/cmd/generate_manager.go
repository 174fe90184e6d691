package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dosanma1/modelforge/internal/generator"
	"github.com/dosanma1/modelforge/internal/project"
	"github.com/dosanma1/modelforge/internal/ui"
)

func newGenerateManagerCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "manager",
		Short: "Generate a model manager interface and abstract manager",
		Long: `Generate the model manager of an existing model.

  modelforge generate manager --model=AcmeBlogBundle:Blog/Post

creates Acme\BlogBundle\Model\Manager\Blog\PostManagerInterface and the
abstract PostManager next to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGeneration(cmd, generation{
				step:     "manager",
				title:    "Model manager generation",
				opts:     opts,
				interact: interactManager,
				options: func(*project.Project, generator.Target) (generator.GeneratorOptions, error) {
					return generator.GeneratorOptions{}, nil
				},
			})
		},
	}

	addModelFlags(cmd, opts)

	return cmd
}

func interactManager(w *wizard) error {
	w.intro("Welcome to the model manager generator", "This command helps you generate model managers.")

	if err := w.askModel(true); err != nil {
		return err
	}

	shortcut := w.ref.ContainerID() + ":Manager:" + w.ref.ModelPath() + "Manager"
	w.summary(fmt.Sprintf("You are going to generate a %s model manager", ui.NounStyle.Render(shortcut)))
	return nil
}
